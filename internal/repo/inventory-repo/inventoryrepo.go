package inventoryrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const inventoryColumns = "id, product_name, category, stock_quantity, reorder_level, price_per_unit"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanInventory(row pgx.Row) (*domain.Inventory, error) {
	var item domain.Inventory
	err := row.Scan(&item.ID, &item.ProductName, &item.Category, &item.StockQuantity, &item.ReorderLevel, &item.PricePerUnit)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	rows, err := r.db.Query(ctx, "SELECT "+inventoryColumns+" FROM inventories ORDER BY id")
	if err != nil {
		zap.L().Error("can't list inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Inventory, 0)
	for rows.Next() {
		item, err := scanInventory(rows)
		if err != nil {
			zap.L().Error("can't scan inventory row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Inventory, error) {
	item, err := scanInventory(r.db.QueryRow(ctx, "SELECT "+inventoryColumns+" FROM inventories WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find inventory item", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) Create(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error) {
	query := `
		INSERT INTO inventories (product_name, category, stock_quantity, reorder_level, price_per_unit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, item.ProductName, item.Category, item.StockQuantity, item.ReorderLevel, item.PricePerUnit).Scan(&item.ID)
	if err != nil {
		zap.L().Error("can't save inventory item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) Update(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error) {
	query := `
		UPDATE inventories
		SET product_name = $1, category = $2, stock_quantity = $3, reorder_level = $4, price_per_unit = $5
		WHERE id = $6
		RETURNING ` + inventoryColumns
	updated, err := scanInventory(r.db.QueryRow(ctx, query,
		item.ProductName, item.Category, item.StockQuantity, item.ReorderLevel, item.PricePerUnit, item.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update inventory item", zap.Int("id", item.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM inventories WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete inventory item", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
