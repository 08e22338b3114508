package expenserepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const expenseColumns = `e.id, e.title, e.description, e.amount, e.expense_date, e.submitted_at, e.status,
		e.approved_at, e.denial_reason, e.category_id, e.submitted_by_user_id, e.approved_by_user_id, e.version`

// detailsQuery hydrates an expense with its submitter, category, receipt and reviewer in one round trip.
const detailsQuery = `
		SELECT ` + expenseColumns + `,
			s.id, s.email, s.username, s.role, s.active,
			c.id, c.name,
			r.id, r.file_name, r.file_type, r.file_url, r.uploaded_at,
			a.id, a.email, a.username, a.role, a.active
		FROM expenses e
		JOIN users s ON s.id = e.submitted_by_user_id
		JOIN expense_categories c ON c.id = e.category_id
		LEFT JOIN expense_receipts r ON r.expense_id = e.id
		LEFT JOIN users a ON a.id = e.approved_by_user_id
	`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateWithReceipt inserts the expense and, when given, its receipt in one transaction.
func (r *Repository) CreateWithReceipt(ctx context.Context, expense *domain.Expense, receipt *domain.ExpenseReceipt) (*domain.Expense, error) {
	expenseQuery := `
		INSERT INTO expenses (title, description, amount, expense_date, submitted_at, status, category_id, submitted_by_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, version
	`
	receiptQuery := `
		INSERT INTO expense_receipts (expense_id, file_name, file_type, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, expenseQuery,
			expense.Title, expense.Description, expense.Amount, expense.ExpenseDate, expense.SubmittedAt,
			expense.Status, expense.CategoryID, expense.SubmittedByID,
		).Scan(&expense.ID, &expense.Version)
		if err != nil {
			zap.L().Error("can't save expense", zap.Error(err))
			return err
		}
		if receipt == nil {
			return nil
		}

		receipt.ExpenseID = expense.ID
		err = r.db.QueryRow(ctx, receiptQuery,
			receipt.ExpenseID, receipt.FileName, receipt.FileType, receipt.FileURL, receipt.UploadedAt,
		).Scan(&receipt.ID)
		if err != nil {
			zap.L().Error("can't save expense receipt", zap.Int("expense_id", expense.ID), zap.Error(err))
			return err
		}
		expense.Receipt = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM expenses e WHERE e.id = $1"

	var expense domain.Expense
	err := r.db.QueryRow(ctx, query, id).Scan(
		&expense.ID, &expense.Title, &expense.Description, &expense.Amount, &expense.ExpenseDate,
		&expense.SubmittedAt, &expense.Status, &expense.ApprovedAt, &expense.DenialReason,
		&expense.CategoryID, &expense.SubmittedByID, &expense.ApprovedByID, &expense.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find expense", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &expense, nil
}

func (r *Repository) FindDetailsByID(ctx context.Context, id int) (*domain.Expense, error) {
	expense, err := scanDetails(r.db.QueryRow(ctx, detailsQuery+"WHERE e.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find expense details", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return expense, nil
}

// FindByStatus returns hydrated expenses in submission order.
func (r *Repository) FindByStatus(ctx context.Context, status domain.ExpenseStatus) ([]domain.Expense, error) {
	rows, err := r.db.Query(ctx, detailsQuery+"WHERE e.status = $1 ORDER BY e.submitted_at, e.id", status)
	if err != nil {
		zap.L().Error("can't get expenses by status", zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		expense, err := scanDetails(rows)
		if err != nil {
			zap.L().Error("can't scan expense row", zap.Error(err))
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate expense rows", zap.Error(err))
		return nil, err
	}
	return expenses, nil
}

// UpdateReview writes the review fields if nobody changed the expense since it was read.
// It returns false when the version check lost.
func (r *Repository) UpdateReview(ctx context.Context, expense *domain.Expense) (bool, error) {
	query := `
		UPDATE expenses
		SET status = $1, approved_at = $2, approved_by_user_id = $3, denial_reason = $4, version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`
	err := r.db.QueryRow(ctx, query,
		expense.Status, expense.ApprovedAt, expense.ApprovedByID, expense.DenialReason, expense.ID, expense.Version,
	).Scan(&expense.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't update expense review", zap.Int("id", expense.ID), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete expense", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanDetails(row pgx.Row) (*domain.Expense, error) {
	var (
		expense   domain.Expense
		submitter domain.User
		category  domain.ExpenseCategory

		receiptID         *int
		receiptFileName   *string
		receiptFileType   *string
		receiptFileURL    *string
		receiptUploadedAt *time.Time

		approverID       *int
		approverEmail    *string
		approverUsername *string
		approverRole     *string
		approverActive   *bool
	)
	err := row.Scan(
		&expense.ID, &expense.Title, &expense.Description, &expense.Amount, &expense.ExpenseDate,
		&expense.SubmittedAt, &expense.Status, &expense.ApprovedAt, &expense.DenialReason,
		&expense.CategoryID, &expense.SubmittedByID, &expense.ApprovedByID, &expense.Version,
		&submitter.ID, &submitter.Email, &submitter.Username, &submitter.Role, &submitter.Active,
		&category.ID, &category.Name,
		&receiptID, &receiptFileName, &receiptFileType, &receiptFileURL, &receiptUploadedAt,
		&approverID, &approverEmail, &approverUsername, &approverRole, &approverActive,
	)
	if err != nil {
		return nil, err
	}

	expense.SubmittedBy = &submitter
	expense.Category = &category
	if receiptID != nil {
		expense.Receipt = &domain.ExpenseReceipt{
			ID:         *receiptID,
			ExpenseID:  expense.ID,
			FileName:   deref(receiptFileName),
			FileType:   deref(receiptFileType),
			FileURL:    deref(receiptFileURL),
			UploadedAt: derefTime(receiptUploadedAt),
		}
	}
	if approverID != nil {
		approver := &domain.User{
			ID:       *approverID,
			Email:    deref(approverEmail),
			Username: deref(approverUsername),
			Role:     domain.Role(deref(approverRole)),
		}
		if approverActive != nil {
			approver.Active = *approverActive
		}
		expense.ApprovedBy = approver
	}
	return &expense, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
