package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/erpfinance/docs"
	"github.com/GlebRadaev/erpfinance/internal/handlers/auth"
	"github.com/GlebRadaev/erpfinance/internal/handlers/categories"
	"github.com/GlebRadaev/erpfinance/internal/handlers/customers"
	"github.com/GlebRadaev/erpfinance/internal/handlers/email"
	"github.com/GlebRadaev/erpfinance/internal/handlers/expenses"
	"github.com/GlebRadaev/erpfinance/internal/handlers/inventories"
	"github.com/GlebRadaev/erpfinance/internal/handlers/orders"
	"github.com/GlebRadaev/erpfinance/internal/handlers/users"
	"github.com/GlebRadaev/erpfinance/internal/service"
	pkgauth "github.com/GlebRadaev/erpfinance/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      auth.NewMockService(ctrl),
		UserService:      users.NewMockService(ctrl),
		ExpenseService:   expenses.NewMockService(ctrl),
		CategoryService:  categories.NewMockService(ctrl),
		CustomerService:  customers.NewMockService(ctrl),
		InventoryService: inventories.NewMockService(ctrl),
		OrderService:     orders.NewMockService(ctrl),
		EmailService:     email.NewMockService(ctrl),
		JWTService:       pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services, 10<<20, nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.ExpenseHandler)
	assert.NotNil(t, h.jwtService)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockExpenseHandler := NewMockExpenseHandler(ctrl)
	mockCategoryHandler := NewMockCategoryHandler(ctrl)
	mockCustomerHandler := NewMockCrudHandler(ctrl)
	mockInventoryHandler := NewMockCrudHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockEmailHandler := NewMockEmailHandler(ctrl)
	mockJWT := pkgauth.NewMockJWTServiceInterface(ctrl)
	mockFiles := NewMockFileServer(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Activate(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Deactivate(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().ListPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().Deny(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().AddComment(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().ListComments(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockCategoryHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockCategoryHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	for _, m := range []*MockCrudHandler{mockCustomerHandler, mockInventoryHandler} {
		m.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
		m.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
		m.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
		m.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
		m.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	}
	mockOrderHandler.EXPECT().AddOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().DeleteOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmailHandler.EXPECT().SendWelcome(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmailHandler.EXPECT().SendDisabled(gomock.Any(), gomock.Any()).AnyTimes()

	mockJWT.EXPECT().ValidateToken("employee").Return(&pkgauth.Claims{UserID: 1, Role: "EMPLOYEE"}, nil).AnyTimes()
	mockJWT.EXPECT().ValidateToken("accountant").Return(&pkgauth.Claims{UserID: 2, Role: "ACCOUNTANT"}, nil).AnyTimes()
	mockJWT.EXPECT().ValidateToken("admin").Return(&pkgauth.Claims{UserID: 3, Role: "ADMIN"}, nil).AnyTimes()
	mockJWT.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).AnyTimes()

	mockFiles.EXPECT().URLPrefix().Return("/files")
	mockFiles.EXPECT().Handler().Return(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		UserHandler:      mockUserHandler,
		ExpenseHandler:   mockExpenseHandler,
		CategoryHandler:  mockCategoryHandler,
		CustomerHandler:  mockCustomerHandler,
		InventoryHandler: mockInventoryHandler,
		OrderHandler:     mockOrderHandler,
		EmailHandler:     mockEmailHandler,
		jwtService:       mockJWT,
		files:            mockFiles,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/users/register", "", http.StatusOK},
		{"POST", "/api/users/login", "", http.StatusOK},
		{"GET", "/files/abc.pdf", "", http.StatusTeapot},

		{"POST", "/api/expenses/submit", "", http.StatusUnauthorized},
		{"POST", "/api/expenses/submit", "expired", http.StatusUnauthorized},
		{"POST", "/api/expenses/submit", "employee", http.StatusOK},
		{"GET", "/api/expenses/5", "employee", http.StatusOK},
		{"POST", "/api/expenses/5/comments", "employee", http.StatusOK},
		{"GET", "/api/expenses/5/comments", "employee", http.StatusOK},
		{"GET", "/api/expenses/pending", "employee", http.StatusForbidden},
		{"GET", "/api/expenses/pending", "accountant", http.StatusOK},
		{"PUT", "/api/expenses/approve/5", "employee", http.StatusForbidden},
		{"PUT", "/api/expenses/approve/5", "accountant", http.StatusOK},
		{"PUT", "/api/expenses/deny/5", "accountant", http.StatusOK},
		{"DELETE", "/api/expenses/5", "accountant", http.StatusForbidden},
		{"DELETE", "/api/expenses/5", "admin", http.StatusOK},

		{"GET", "/api/expense-categories", "employee", http.StatusOK},
		{"POST", "/api/expense-categories", "employee", http.StatusOK},

		{"GET", "/api/customers", "employee", http.StatusOK},
		{"POST", "/api/customers", "employee", http.StatusOK},
		{"GET", "/api/customers/1", "employee", http.StatusOK},
		{"PUT", "/api/customers/1", "employee", http.StatusOK},
		{"DELETE", "/api/customers/1", "employee", http.StatusOK},
		{"GET", "/api/inventories", "", http.StatusUnauthorized},
		{"PUT", "/api/inventories/1", "employee", http.StatusOK},
		{"GET", "/api/orders", "employee", http.StatusOK},
		{"POST", "/api/orders", "employee", http.StatusOK},
		{"PUT", "/api/orders/1", "employee", http.StatusOK},
		{"DELETE", "/api/orders/1", "employee", http.StatusOK},

		{"GET", "/api/users/allusers", "employee", http.StatusForbidden},
		{"GET", "/api/users/allusers", "admin", http.StatusOK},
		{"GET", "/api/users", "admin", http.StatusOK},
		{"PUT", "/api/users/activate/4", "admin", http.StatusOK},
		{"PUT", "/api/users/deactivate/4", "admin", http.StatusOK},
		{"DELETE", "/api/users/delete/4", "admin", http.StatusOK},
		{"POST", "/api/email/send-welcome", "accountant", http.StatusForbidden},
		{"POST", "/api/email/send-welcome", "admin", http.StatusOK},
		{"POST", "/api/email/disabled", "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
