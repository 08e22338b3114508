package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mock.go -package=orderservice

type Repo interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int) (bool, error)
}
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const (
	// NewOrderStatus заказ создан;
	NewOrderStatus string = "NEW"
	// UnpaidPaymentStatus оплата ещё не поступила;
	UnpaidPaymentStatus string = "UNPAID"
)

var (
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrOrderAlreadyExists = fmt.Errorf("%w: order already exists", domain.ErrConflict)
)

// OrderPatch carries the fields of an update. Nil fields keep their stored value.
type OrderPatch struct {
	Number        *string
	OrderDate     *time.Time
	Status        *string
	PaymentStatus *string
	Total         *decimal.Decimal
	CustomerID    *int
	InventoryID   *int
}

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if !validate.OrderNumber(order.Number) {
		return nil, ErrInvalidOrderNumber
	}
	if order.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total can't be negative", domain.ErrValidation)
	}
	existingOrder, err := s.repo.FindByOrderNumber(ctx, order.Number)
	if err != nil {
		return nil, err
	}
	if existingOrder != nil {
		zap.L().Info("order already exists", zap.String("order_number", order.Number))
		return nil, ErrOrderAlreadyExists
	}

	if order.Status == "" {
		order.Status = NewOrderStatus
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = UnpaidPaymentStatus
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (s *Service) GetOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	return order, nil
}

// UpdateOrder applies only the fields present in patch.
func (s *Service) UpdateOrder(ctx context.Context, id int, patch OrderPatch) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Number != nil && *patch.Number != order.Number {
		if !validate.OrderNumber(*patch.Number) {
			return nil, ErrInvalidOrderNumber
		}
		other, err := s.repo.FindByOrderNumber(ctx, *patch.Number)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, ErrOrderAlreadyExists
		}
		order.Number = *patch.Number
	}
	if patch.OrderDate != nil {
		order.OrderDate = *patch.OrderDate
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Total != nil {
		if patch.Total.IsNegative() {
			return nil, fmt.Errorf("%w: total can't be negative", domain.ErrValidation)
		}
		order.Total = *patch.Total
	}
	if patch.CustomerID != nil {
		order.CustomerID = patch.CustomerID
	}
	if patch.InventoryID != nil {
		order.InventoryID = patch.InventoryID
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	return nil
}
