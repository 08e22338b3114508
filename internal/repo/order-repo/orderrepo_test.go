package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var columns = []string{"id", "order_number", "order_date", "status", "payment_status", "total", "customer_id", "inventory_id"}

func TestRepository_FindByOrderNumber(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Now()
	total := decimal.RequireFromString("250.00")
	customerID := 3
	query := regexp.QuoteMeta("SELECT " + orderColumns + " FROM orders WHERE order_number = $1")

	tests := []struct {
		name        string
		orderNumber string
		mockSetup   func()
		expectErr   bool
		result      *domain.Order
	}{
		{
			name:        "Order exists",
			orderNumber: "12345678903",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, "12345678903", date, "NEW", "UNPAID", total, &customerID, nil)
				mock.ExpectQuery(query).
					WithArgs("12345678903").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Order{
				ID:            1,
				Number:        "12345678903",
				OrderDate:     date,
				Status:        "NEW",
				PaymentStatus: "UNPAID",
				Total:         total,
				CustomerID:    &customerID,
			},
		},
		{
			name:        "Order does not exist",
			orderNumber: "79927398713",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("79927398713").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:        "Database error",
			orderNumber: "12345678903",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("12345678903").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOrderNumber(context.Background(), tt.orderNumber)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta("SELECT " + orderColumns + " FROM orders WHERE id = $1")

	mock.ExpectQuery(query).WithArgs(1).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "12345678903", time.Now(), "NEW", "UNPAID", decimal.Zero, nil, nil))
	order, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, order.CustomerID)

	mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
	order, err = repo.FindByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta("SELECT " + orderColumns + " FROM orders ORDER BY order_date DESC, id DESC")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Orders found",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(columns).
					AddRow(2, "79927398713", time.Now(), "SHIPPED", "PAID", decimal.NewFromInt(10), nil, nil).
					AddRow(1, "12345678903", time.Now(), "NEW", "UNPAID", decimal.NewFromInt(5), nil, nil))
			},
			expectLen: 2,
		},
		{
			name: "No orders",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(columns))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, orders, tt.expectLen)
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	date := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO orders (order_number, order_date, status, payment_status, total, customer_id, inventory_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`)

	tests := []struct {
		name        string
		order       *domain.Order
		mockSetup   func()
		expectedErr error
	}{
		{
			name:  "Save order successfully",
			order: &domain.Order{Number: "12345678903", OrderDate: date, Status: "NEW", PaymentStatus: "UNPAID", Total: decimal.Zero},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs("12345678903", date, "NEW", "UNPAID", decimal.Zero, pgxmock.AnyArg(), pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))
					return fn(ctx)
				})
			},
		},
		{
			name:  "Duplicate order number",
			order: &domain.Order{Number: "12345678903", OrderDate: date, Status: "NEW", PaymentStatus: "UNPAID", Total: decimal.Zero},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs("12345678903", date, "NEW", "UNPAID", decimal.Zero, pgxmock.AnyArg(), pgxmock.AnyArg()).
						WillReturnError(&pgconn.PgError{Code: "23505"})
					return fn(ctx)
				})
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name:  "Transaction error",
			order: &domain.Order{Number: "12345678903", OrderDate: date, Status: "NEW", PaymentStatus: "UNPAID", Total: decimal.Zero},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("transaction error"))
			},
			expectedErr: errors.New("transaction error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.Save(context.Background(), tt.order)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Nil(t, order)
				if errors.Is(tt.expectedErr, domain.ErrConflict) {
					assert.ErrorIs(t, err, domain.ErrConflict)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 9, order.ID)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	date := time.Now()
	query := regexp.QuoteMeta(`UPDATE orders
        SET order_number = $1, order_date = $2, status = $3, payment_status = $4, total = $5,
            customer_id = $6, inventory_id = $7
        WHERE id = $8`)

	tests := []struct {
		name        string
		order       *domain.Order
		mockSetup   func()
		expectedErr bool
	}{
		{
			name:  "Update order successfully",
			order: &domain.Order{ID: 1, Number: "12345678903", OrderDate: date, Status: "SHIPPED", PaymentStatus: "PAID", Total: decimal.Zero},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(query).
						WithArgs("12345678903", date, "SHIPPED", "PAID", decimal.Zero, pgxmock.AnyArg(), pgxmock.AnyArg(), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name:  "Database error on update",
			order: &domain.Order{ID: 1, Number: "12345678903", OrderDate: date, Status: "SHIPPED", PaymentStatus: "PAID", Total: decimal.Zero},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(query).
						WithArgs("12345678903", date, "SHIPPED", "PAID", decimal.Zero, pgxmock.AnyArg(), pgxmock.AnyArg(), 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), tt.order)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, deleted)
}
