package service

import (
	"github.com/GlebRadaev/erpfinance/internal/config"
	"github.com/GlebRadaev/erpfinance/internal/handlers/auth"
	"github.com/GlebRadaev/erpfinance/internal/handlers/categories"
	"github.com/GlebRadaev/erpfinance/internal/handlers/customers"
	"github.com/GlebRadaev/erpfinance/internal/handlers/email"
	"github.com/GlebRadaev/erpfinance/internal/handlers/expenses"
	"github.com/GlebRadaev/erpfinance/internal/handlers/inventories"
	"github.com/GlebRadaev/erpfinance/internal/handlers/orders"
	"github.com/GlebRadaev/erpfinance/internal/handlers/users"

	pkgauth "github.com/GlebRadaev/erpfinance/pkg/auth"

	"github.com/GlebRadaev/erpfinance/internal/repo"
	authservice "github.com/GlebRadaev/erpfinance/internal/service/authservice"
	customerservice "github.com/GlebRadaev/erpfinance/internal/service/customerservice"
	expenseservice "github.com/GlebRadaev/erpfinance/internal/service/expenseservice"
	inventoryservice "github.com/GlebRadaev/erpfinance/internal/service/inventoryservice"
	orderservice "github.com/GlebRadaev/erpfinance/internal/service/orderservice"
	userservice "github.com/GlebRadaev/erpfinance/internal/service/userservice"
)

type Services struct {
	AuthService      auth.Service
	UserService      users.Service
	ExpenseService   expenses.Service
	CategoryService  categories.Service
	CustomerService  customers.Service
	InventoryService inventories.Service
	OrderService     orders.Service
	EmailService     email.Service
	JWTService       pkgauth.JWTServiceInterface
}

// Integrations are the outbound adapters the services talk to.
type Integrations struct {
	Storage  expenseservice.FileStorage
	Notifier expenseservice.Notifier
	Mailer   email.Service
}

func New(cfg *config.Config, repo *repo.Repositories, in Integrations) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	expenseService := expenseservice.New(
		repo.ExpenseRepo, repo.CommentRepo, repo.CategoryRepo, repo.UserRepo,
		in.Storage, in.Notifier, cfg.ReviewPolicy,
	)

	return &Services{
		AuthService:      authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL),
		UserService:      userservice.New(repo.UserRepo, cfg.UserDeletePolicy),
		ExpenseService:   expenseService,
		CategoryService:  expenseService,
		CustomerService:  customerservice.New(repo.CustomerRepo),
		InventoryService: inventoryservice.New(repo.InventoryRepo),
		OrderService:     orderservice.New(repo.OrderRepo),
		EmailService:     in.Mailer,
		JWTService:       jwtService,
	}
}
