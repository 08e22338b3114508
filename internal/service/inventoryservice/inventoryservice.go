package inventoryservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=inventoryservice.go -destination=mock.go -package=inventoryservice

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Inventory, error)
	FindByID(ctx context.Context, id int) (*domain.Inventory, error)
	Create(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error)
	Update(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Inventory, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Inventory, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: inventory item %d", domain.ErrNotFound, id)
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error) {
	if err := validate(item); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	zap.L().Info("inventory item created", zap.Int("id", created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, item *domain.Inventory) (*domain.Inventory, error) {
	if err := validate(item); err != nil {
		return nil, err
	}
	item.ID = id
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: inventory item %d", domain.ErrNotFound, id)
	}
	if updated.StockQuantity <= updated.ReorderLevel {
		zap.L().Info("inventory item below reorder level", zap.Int("id", id), zap.Int("stock", updated.StockQuantity))
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: inventory item %d", domain.ErrNotFound, id)
	}
	return nil
}

func validate(item *domain.Inventory) error {
	if item.StockQuantity < 0 || item.ReorderLevel < 0 {
		return fmt.Errorf("%w: quantities can't be negative", domain.ErrValidation)
	}
	if item.PricePerUnit.IsNegative() {
		return fmt.Errorf("%w: price can't be negative", domain.ErrValidation)
	}
	return nil
}
