package expenseservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"go.uber.org/zap"
)

// Notification failures never fail the workflow call that produced them.

func (s *Service) notifyAccountants(ctx context.Context, expense *domain.Expense) {
	accountants, err := s.users.FindActiveByRole(ctx, domain.RoleAccountant)
	if err != nil {
		zap.L().Warn("can't load accountants for notification", zap.Int("expense", expense.ID), zap.Error(err))
		return
	}
	recipients := make([]string, 0, len(accountants))
	for _, a := range accountants {
		recipients = append(recipients, a.Email)
	}
	if len(recipients) == 0 {
		return
	}

	s.enqueue(ctx, domain.Notification{
		Template:   TemplateSubmitted,
		Subject:    fmt.Sprintf("New expense awaiting review: %s", expense.Title),
		Recipients: recipients,
		Variables: map[string]any{
			"ExpenseID": expense.ID,
			"Title":     expense.Title,
			"Amount":    expense.Amount.StringFixed(2),
			"Submitter": expense.SubmittedBy.Username,
			"Category":  expense.Category.Name,
		},
	})
}

func (s *Service) notifySubmitter(ctx context.Context, expense *domain.Expense, reviewer *domain.User) {
	if expense.SubmittedBy == nil || expense.SubmittedBy.Email == "" {
		return
	}

	n := domain.Notification{
		Template:   TemplateApproved,
		Subject:    fmt.Sprintf("Your expense %q was approved", expense.Title),
		Recipients: []string{expense.SubmittedBy.Email},
		Variables: map[string]any{
			"ExpenseID": expense.ID,
			"Title":     expense.Title,
			"Amount":    expense.Amount.StringFixed(2),
			"Username":  expense.SubmittedBy.Username,
			"Reviewer":  reviewer.Username,
		},
	}
	if expense.Status == domain.ExpenseStatusDenied {
		n.Template = TemplateDenied
		n.Subject = fmt.Sprintf("Your expense %q was denied", expense.Title)
		n.Variables["Reason"] = ""
		if expense.DenialReason != nil {
			n.Variables["Reason"] = *expense.DenialReason
		}
	}
	s.enqueue(ctx, n)
}

func (s *Service) enqueue(ctx context.Context, n domain.Notification) {
	if err := s.notifier.Enqueue(ctx, n); err != nil {
		zap.L().Warn("notification dropped", zap.String("template", n.Template),
			zap.Error(fmt.Errorf("%w: %v", domain.ErrDelivery, err)))
	}
}
