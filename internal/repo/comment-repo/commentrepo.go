package commentrepo

import (
	"context"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, comment *domain.ExpenseComment) (*domain.ExpenseComment, error) {
	query := `
		INSERT INTO expense_comments (expense_id, user_id, comment_text, commented_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, comment.ExpenseID, comment.AuthorID, comment.Text, comment.CommentedAt).Scan(&comment.ID)
	if err != nil {
		zap.L().Error("can't save comment", zap.Int("expense_id", comment.ExpenseID), zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (r *Repository) FindByExpenseID(ctx context.Context, expenseID int) ([]domain.ExpenseComment, error) {
	query := `
		SELECT c.id, c.expense_id, c.user_id, c.comment_text, c.commented_at, u.id, u.email, u.username, u.role, u.active
		FROM expense_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.expense_id = $1
		ORDER BY c.commented_at, c.id
	`
	rows, err := r.db.Query(ctx, query, expenseID)
	if err != nil {
		zap.L().Error("can't get comments", zap.Int("expense_id", expenseID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.ExpenseComment, 0)
	for rows.Next() {
		var (
			comment domain.ExpenseComment
			author  domain.User
		)
		err := rows.Scan(
			&comment.ID, &comment.ExpenseID, &comment.AuthorID, &comment.Text, &comment.CommentedAt,
			&author.ID, &author.Email, &author.Username, &author.Role, &author.Active,
		)
		if err != nil {
			zap.L().Error("can't scan comment row", zap.Error(err))
			return nil, err
		}
		comment.Author = &author
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate comment rows", zap.Error(err))
		return nil, err
	}
	return comments, nil
}
