package categoryrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ExpenseCategory, error) {
	var category domain.ExpenseCategory
	err := r.db.QueryRow(ctx, "SELECT id, name FROM expense_categories WHERE id = $1", id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find category", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.ExpenseCategory, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM expense_categories ORDER BY name")
	if err != nil {
		zap.L().Error("can't list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := make([]domain.ExpenseCategory, 0)
	for rows.Next() {
		var category domain.ExpenseCategory
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate category rows", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *Repository) Create(ctx context.Context, name string) (*domain.ExpenseCategory, error) {
	category := domain.ExpenseCategory{Name: name}
	err := r.db.QueryRow(ctx, "INSERT INTO expense_categories (name) VALUES ($1) RETURNING id", name).Scan(&category.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %q already exists", domain.ErrConflict, name)
		}
		zap.L().Error("can't save category", zap.Error(err))
		return nil, err
	}
	return &category, nil
}
