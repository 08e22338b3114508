package expenseservice

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/GlebRadaev/erpfinance/internal/config"
	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=expenseservice.go -destination=mock.go -package=expenseservice

type ExpenseRepo interface {
	CreateWithReceipt(ctx context.Context, expense *domain.Expense, receipt *domain.ExpenseReceipt) (*domain.Expense, error)
	FindByID(ctx context.Context, id int) (*domain.Expense, error)
	FindDetailsByID(ctx context.Context, id int) (*domain.Expense, error)
	FindByStatus(ctx context.Context, status domain.ExpenseStatus) ([]domain.Expense, error)
	UpdateReview(ctx context.Context, expense *domain.Expense) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type CommentRepo interface {
	Create(ctx context.Context, comment *domain.ExpenseComment) (*domain.ExpenseComment, error)
	FindByExpenseID(ctx context.Context, expenseID int) ([]domain.ExpenseComment, error)
}

type CategoryRepo interface {
	FindByID(ctx context.Context, id int) (*domain.ExpenseCategory, error)
	FindAll(ctx context.Context) ([]domain.ExpenseCategory, error)
	Create(ctx context.Context, name string) (*domain.ExpenseCategory, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// FileStorage keeps uploaded receipts and hands back the URL they are served from.
type FileStorage interface {
	Store(ctx context.Context, r io.Reader, originalName string) (string, error)
	Delete(ctx context.Context, url string) error
}

type Notifier interface {
	Enqueue(ctx context.Context, n domain.Notification) error
}

const (
	TemplateSubmitted = "expense_submitted.html"
	TemplateApproved  = "expense_approved.html"
	TemplateDenied    = "expense_denied.html"
)

type ReceiptUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

type SubmitInput struct {
	Title       string
	Description string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	CategoryID  int
	SubmitterID int
	Receipt     *ReceiptUpload
}

type Service struct {
	expenses   ExpenseRepo
	comments   CommentRepo
	categories CategoryRepo
	users      UserRepo
	storage    FileStorage
	notifier   Notifier
	policy     string
	now        func() time.Time
}

func New(expenses ExpenseRepo, comments CommentRepo, categories CategoryRepo, users UserRepo,
	storage FileStorage, notifier Notifier, reviewPolicy string) *Service {
	return &Service{
		expenses:   expenses,
		comments:   comments,
		categories: categories,
		users:      users,
		storage:    storage,
		notifier:   notifier,
		policy:     reviewPolicy,
		now:        time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.Expense, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %d", domain.ErrNotFound, in.CategoryID)
	}
	submitter, err := s.users.FindByID(ctx, in.SubmitterID)
	if err != nil {
		return nil, err
	}
	if submitter == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, in.SubmitterID)
	}

	now := s.now()
	var receipt *domain.ExpenseReceipt
	if in.Receipt != nil {
		url, err := s.storage.Store(ctx, in.Receipt.Content, in.Receipt.FileName)
		if err != nil {
			zap.L().Error("can't store receipt", zap.String("file", in.Receipt.FileName), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
		receipt = &domain.ExpenseReceipt{
			FileName:   in.Receipt.FileName,
			FileType:   in.Receipt.ContentType,
			FileURL:    url,
			UploadedAt: now,
		}
	}

	expense := &domain.Expense{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Amount:        in.Amount,
		ExpenseDate:   in.ExpenseDate,
		SubmittedAt:   now,
		Status:        domain.ExpenseStatusPending,
		CategoryID:    category.ID,
		SubmittedByID: submitter.ID,
	}
	created, err := s.expenses.CreateWithReceipt(ctx, expense, receipt)
	if err != nil {
		if receipt != nil {
			if derr := s.storage.Delete(ctx, receipt.FileURL); derr != nil {
				zap.L().Warn("can't remove orphaned receipt", zap.String("url", receipt.FileURL), zap.Error(derr))
			}
		}
		return nil, err
	}
	created.Category = category
	created.SubmittedBy = submitter

	zap.L().Info("expense submitted", zap.Int("id", created.ID), zap.Int("submitter", submitter.ID))
	s.notifyAccountants(ctx, created)
	return created, nil
}

func validateSubmit(in SubmitInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if !in.Amount.Equal(in.Amount.Truncate(2)) {
		return fmt.Errorf("%w: amount must have at most two decimal places", domain.ErrValidation)
	}
	if in.ExpenseDate.IsZero() {
		return fmt.Errorf("%w: expense date is required", domain.ErrValidation)
	}
	return nil
}

// ListPending returns every expense waiting for review, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]domain.Expense, error) {
	return s.expenses.FindByStatus(ctx, domain.ExpenseStatusPending)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Expense, error) {
	expense, err := s.expenses.FindDetailsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense %d", domain.ErrNotFound, id)
	}
	return expense, nil
}

func (s *Service) Approve(ctx context.Context, expenseID, reviewerID int) (*domain.Expense, error) {
	return s.review(ctx, expenseID, reviewerID, domain.ExpenseStatusApproved, nil)
}

func (s *Service) Deny(ctx context.Context, expenseID, reviewerID int, reason string) (*domain.Expense, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: denial reason is required", domain.ErrValidation)
	}
	return s.review(ctx, expenseID, reviewerID, domain.ExpenseStatusDenied, &reason)
}

func (s *Service) review(ctx context.Context, expenseID, reviewerID int, decision domain.ExpenseStatus, reason *string) (*domain.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense %d", domain.ErrNotFound, expenseID)
	}
	reviewer, err := s.users.FindByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, reviewerID)
	}
	if !reviewer.Active || !reviewer.Role.CanReview() {
		return nil, fmt.Errorf("%w: user %d can't review expenses", domain.ErrForbidden, reviewerID)
	}

	if expense.Status != domain.ExpenseStatusPending {
		switch s.policy {
		case config.ReviewPolicyPermissive:
		case config.ReviewPolicyIdempotent:
			if expense.Status != decision {
				return nil, fmt.Errorf("%w: expense %d is already %s", domain.ErrConflict, expenseID, expense.Status)
			}
			zap.L().Info("repeated review ignored", zap.Int("id", expenseID), zap.String("status", string(decision)))
			return s.Get(ctx, expenseID)
		default:
			return nil, fmt.Errorf("%w: expense %d is already %s", domain.ErrConflict, expenseID, expense.Status)
		}
	}

	now := s.now()
	expense.Status = decision
	expense.ApprovedAt = &now
	expense.ApprovedByID = &reviewer.ID
	expense.DenialReason = reason

	updated, err := s.expenses.UpdateReview(ctx, expense)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: expense %d was reviewed concurrently", domain.ErrConflict, expenseID)
	}
	zap.L().Info("expense reviewed", zap.Int("id", expenseID), zap.String("status", string(decision)), zap.Int("reviewer", reviewerID))

	result, err := s.Get(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	s.notifySubmitter(ctx, result, reviewer)
	return result, nil
}

func (s *Service) AddComment(ctx context.Context, expenseID, authorID int, text string) (*domain.ExpenseComment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrValidation)
	}
	expense, err := s.expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense %d", domain.ErrNotFound, expenseID)
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, authorID)
	}

	comment, err := s.comments.Create(ctx, &domain.ExpenseComment{
		ExpenseID:   expense.ID,
		AuthorID:    author.ID,
		Text:        text,
		CommentedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}
	comment.Author = author
	return comment, nil
}

func (s *Service) ListComments(ctx context.Context, expenseID int) ([]domain.ExpenseComment, error) {
	expense, err := s.expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense %d", domain.ErrNotFound, expenseID)
	}
	return s.comments.FindByExpenseID(ctx, expenseID)
}

// Delete removes the expense with its receipt and comments. The stored receipt file is removed last.
func (s *Service) Delete(ctx context.Context, id int) error {
	expense, err := s.expenses.FindDetailsByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return fmt.Errorf("%w: expense %d", domain.ErrNotFound, id)
	}
	deleted, err := s.expenses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: expense %d", domain.ErrNotFound, id)
	}
	if expense.Receipt != nil {
		if err := s.storage.Delete(ctx, expense.Receipt.FileURL); err != nil {
			zap.L().Warn("can't remove receipt file", zap.String("url", expense.Receipt.FileURL), zap.Error(err))
		}
	}
	zap.L().Info("expense deleted", zap.Int("id", id))
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return s.categories.FindAll(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	return s.categories.Create(ctx, name)
}
