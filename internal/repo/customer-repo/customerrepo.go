package customerrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const customerColumns = "id, name, contact_info, credit_limit, outstanding_payments, remarks"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.ContactInfo, &c.CreditLimit, &c.OutstandingPayments, &c.Remarks); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY id")
	if err != nil {
		zap.L().Error("can't list customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			zap.L().Error("can't scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find customer", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, contact_info, credit_limit, outstanding_payments, remarks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, c.Name, c.ContactInfo, c.CreditLimit, c.OutstandingPayments, c.Remarks).Scan(&c.ID); err != nil {
		zap.L().Error("can't save customer", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// Update replaces every field of the customer. It returns nil when the customer does not exist.
func (r *Repository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET name = $1, contact_info = $2, credit_limit = $3, outstanding_payments = $4, remarks = $5
		WHERE id = $6
		RETURNING ` + customerColumns
	updated, err := scanCustomer(r.db.QueryRow(ctx, query, c.Name, c.ContactInfo, c.CreditLimit, c.OutstandingPayments, c.Remarks, c.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update customer", zap.Int("id", c.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete customer", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
