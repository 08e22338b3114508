package repo

import (
	"github.com/GlebRadaev/erpfinance/internal/pg"
	categoryrepo "github.com/GlebRadaev/erpfinance/internal/repo/category-repo"
	commentrepo "github.com/GlebRadaev/erpfinance/internal/repo/comment-repo"
	customerrepo "github.com/GlebRadaev/erpfinance/internal/repo/customer-repo"
	expenserepo "github.com/GlebRadaev/erpfinance/internal/repo/expense-repo"
	inventoryrepo "github.com/GlebRadaev/erpfinance/internal/repo/inventory-repo"
	orderrepo "github.com/GlebRadaev/erpfinance/internal/repo/order-repo"
	userrepo "github.com/GlebRadaev/erpfinance/internal/repo/user-repo"
	"github.com/GlebRadaev/erpfinance/internal/service/authservice"
	"github.com/GlebRadaev/erpfinance/internal/service/customerservice"
	"github.com/GlebRadaev/erpfinance/internal/service/expenseservice"
	"github.com/GlebRadaev/erpfinance/internal/service/inventoryservice"
	"github.com/GlebRadaev/erpfinance/internal/service/orderservice"
	"github.com/GlebRadaev/erpfinance/internal/service/userservice"
)

// UserRepo is everything the services need from the users table.
type UserRepo interface {
	authservice.Repo
	userservice.Repo
	expenseservice.UserRepo
}

type Repositories struct {
	UserRepo      UserRepo
	CategoryRepo  expenseservice.CategoryRepo
	ExpenseRepo   expenseservice.ExpenseRepo
	CommentRepo   expenseservice.CommentRepo
	CustomerRepo  customerservice.Repo
	InventoryRepo inventoryservice.Repo
	OrderRepo     orderservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn, txManager),
		CategoryRepo:  categoryrepo.New(conn),
		ExpenseRepo:   expenserepo.New(conn, txManager),
		CommentRepo:   commentrepo.New(conn),
		CustomerRepo:  customerrepo.New(conn),
		InventoryRepo: inventoryrepo.New(conn),
		OrderRepo:     orderrepo.New(conn, txManager),
	}
}
