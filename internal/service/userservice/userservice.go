package userservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/config"
	"github.com/GlebRadaev/erpfinance/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock.go -package=userservice

type Repo interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetActive(ctx context.Context, id int, active bool) (*domain.User, error)
	CountReferences(ctx context.Context, id int) (int, error)
	Delete(ctx context.Context, id int) (bool, error)
	DeleteCascade(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo         Repo
	deletePolicy string
}

func New(repo Repo, deletePolicy string) *Service {
	return &Service{
		repo:         repo,
		deletePolicy: deletePolicy,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Activate(ctx context.Context, id int) (*domain.User, error) {
	return s.setActive(ctx, id, true)
}

func (s *Service) Deactivate(ctx context.Context, id int) (*domain.User, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(ctx context.Context, id int, active bool) (*domain.User, error) {
	user, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	zap.L().Info("user status changed", zap.Int("id", id), zap.Bool("active", active))
	return user, nil
}

// Delete removes the user according to the configured delete policy.
func (s *Service) Delete(ctx context.Context, id int) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}

	var deleted bool
	if s.deletePolicy == config.DeletePolicyCascade {
		deleted, err = s.repo.DeleteCascade(ctx, id)
	} else {
		refs, cerr := s.repo.CountReferences(ctx, id)
		if cerr != nil {
			return cerr
		}
		if refs > 0 {
			return fmt.Errorf("%w: user %d has %d expenses or comments", domain.ErrConflict, id, refs)
		}
		deleted, err = s.repo.Delete(ctx, id)
	}
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	zap.L().Info("user deleted", zap.Int("id", id), zap.String("policy", s.deletePolicy))
	return nil
}
