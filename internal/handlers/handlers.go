package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/erpfinance/docs"
	"github.com/GlebRadaev/erpfinance/internal/domain"
	authhandlers "github.com/GlebRadaev/erpfinance/internal/handlers/auth"
	categoryhandlers "github.com/GlebRadaev/erpfinance/internal/handlers/categories"
	customerhandlers "github.com/GlebRadaev/erpfinance/internal/handlers/customers"
	emailhandlers "github.com/GlebRadaev/erpfinance/internal/handlers/email"
	expensehandlers "github.com/GlebRadaev/erpfinance/internal/handlers/expenses"
	inventoryhandlers "github.com/GlebRadaev/erpfinance/internal/handlers/inventories"
	ordershandlers "github.com/GlebRadaev/erpfinance/internal/handlers/orders"
	userhandlers "github.com/GlebRadaev/erpfinance/internal/handlers/users"
	"github.com/GlebRadaev/erpfinance/internal/service"
	"github.com/GlebRadaev/erpfinance/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Deny(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type CrudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	AddOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
}

type EmailHandler interface {
	SendWelcome(w http.ResponseWriter, r *http.Request)
	SendDisabled(w http.ResponseWriter, r *http.Request)
}

// FileServer serves uploaded receipts below URLPrefix.
type FileServer interface {
	Handler() http.Handler
	URLPrefix() string
}

type Handlers struct {
	AuthHandler      AuthHandler
	UserHandler      UserHandler
	ExpenseHandler   ExpenseHandler
	CategoryHandler  CategoryHandler
	CustomerHandler  CrudHandler
	InventoryHandler CrudHandler
	OrderHandler     OrderHandler
	EmailHandler     EmailHandler

	jwtService auth.JWTServiceInterface
	files      FileServer
}

func New(s *service.Services, maxUploadSize int64, files FileServer) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		UserHandler:      userhandlers.New(s.UserService),
		ExpenseHandler:   expensehandlers.New(s.ExpenseService, maxUploadSize),
		CategoryHandler:  categoryhandlers.New(s.CategoryService),
		CustomerHandler:  customerhandlers.New(s.CustomerService),
		InventoryHandler: inventoryhandlers.New(s.InventoryService),
		OrderHandler:     ordershandlers.New(s.OrderService),
		EmailHandler:     emailhandlers.New(s.EmailService),
		jwtService:       s.JWTService,
		files:            files,
	}
}

var (
	adminOnly = auth.RequireRole(string(domain.RoleAdmin))
	reviewers = auth.RequireRole(string(domain.RoleAccountant), string(domain.RoleManager), string(domain.RoleAdmin))
)

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.files != nil {
		r.Handle(h.files.URLPrefix()+"/*", h.files.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", h.AuthHandler.Register)
		r.Post("/users/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Route("/users", func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/", h.UserHandler.List)
				r.Get("/allusers", h.UserHandler.List)
				r.Put("/activate/{id}", h.UserHandler.Activate)
				r.Put("/deactivate/{id}", h.UserHandler.Deactivate)
				r.Delete("/delete/{id}", h.UserHandler.Delete)
			})
			r.Route("/email", func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/send-welcome", h.EmailHandler.SendWelcome)
				r.Post("/disabled", h.EmailHandler.SendDisabled)
			})
			r.Route("/expenses", func(r chi.Router) {
				r.Post("/submit", h.ExpenseHandler.Submit)
				r.With(reviewers).Get("/pending", h.ExpenseHandler.ListPending)
				r.With(reviewers).Put("/approve/{id}", h.ExpenseHandler.Approve)
				r.With(reviewers).Put("/deny/{id}", h.ExpenseHandler.Deny)
				r.Get("/{id}", h.ExpenseHandler.Get)
				r.With(adminOnly).Delete("/{id}", h.ExpenseHandler.Delete)
				r.Post("/{id}/comments", h.ExpenseHandler.AddComment)
				r.Get("/{id}/comments", h.ExpenseHandler.ListComments)
			})
			r.Route("/expense-categories", func(r chi.Router) {
				r.Get("/", h.CategoryHandler.List)
				r.Post("/", h.CategoryHandler.Create)
			})
			crud(r, "/customers", h.CustomerHandler)
			crud(r, "/inventories", h.InventoryHandler)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.AddOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.Put("/{id}", h.OrderHandler.UpdateOrder)
				r.Delete("/{id}", h.OrderHandler.DeleteOrder)
			})
		})
	})

	return r
}

func crud(r chi.Router, pattern string, h CrudHandler) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
