package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = "id, email, username, password_hash, role, active, created_at"

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

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (repo *Repository) FindActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users WHERE role = $1 AND active ORDER BY id", role)
	if err != nil {
		zap.L().Error("can't list users by role", zap.String("role", string(role)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate user rows", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, username, password_hash, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.Username, user.PasswordHash, user.Role, user.Active).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email %s is already registered", domain.ErrConflict, user.Email)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) SetActive(ctx context.Context, id int, active bool) (*domain.User, error) {
	query := `
		UPDATE users
		SET active = $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(repo.db.QueryRow(ctx, query, active, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update user status", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// CountReferences returns how many expenses and comments point at the user.
func (repo *Repository) CountReferences(ctx context.Context, id int) (int, error) {
	query := `
		SELECT
			(SELECT count(*) FROM expenses WHERE submitted_by_user_id = $1 OR approved_by_user_id = $1)
			+ (SELECT count(*) FROM expense_comments WHERE user_id = $1)
	`
	var count int
	if err := repo.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		zap.L().Error("can't count user references", zap.Int("id", id), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (repo *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: user %d is still referenced", domain.ErrConflict, id)
		}
		zap.L().Error("can't delete user", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteCascade removes the user together with its comments and every expense it submitted
// or reviewed. Receipts and comments of those expenses go with them.
func (repo *Repository) DeleteCascade(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := repo.db.Exec(ctx, "DELETE FROM expense_comments WHERE user_id = $1", id); err != nil {
			zap.L().Error("can't delete user comments", zap.Int("id", id), zap.Error(err))
			return err
		}
		if _, err := repo.db.Exec(ctx, "DELETE FROM expenses WHERE submitted_by_user_id = $1 OR approved_by_user_id = $1", id); err != nil {
			zap.L().Error("can't delete user expenses", zap.Int("id", id), zap.Error(err))
			return err
		}
		tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
		if err != nil {
			zap.L().Error("can't delete user", zap.Int("id", id), zap.Error(err))
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
