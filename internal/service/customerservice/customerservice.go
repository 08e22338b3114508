package customerservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customerservice.go -destination=mock.go -package=customerservice

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	return customer, nil
}

func (s *Service) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	zap.L().Info("customer created", zap.Int("id", created.ID))
	return created, nil
}

// Update replaces all fields of the customer with id.
func (s *Service) Update(ctx context.Context, id int, c *domain.Customer) (*domain.Customer, error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	c.ID = id
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	return nil
}

func validate(c *domain.Customer) error {
	if c.CreditLimit.IsNegative() || c.OutstandingPayments.IsNegative() {
		return fmt.Errorf("%w: money fields can't be negative", domain.ErrValidation)
	}
	return nil
}
