package dto

import (
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type ReceiptRefDTO struct {
	ID      int    `json:"id" example:"3"`
	FileURL string `json:"fileUrl" example:"/files/5f0c1b9e-2a7d-4a64-9d4c-1c1f0e6f3b1a.pdf"`
}

type ExpenseResponseDTO struct {
	ID          int             `json:"id" example:"5"`
	Title       string          `json:"title" example:"Hotel in Berlin"`
	Description string          `json:"description" example:"Two nights, conference"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"300.50"`
	ExpenseDate string          `json:"expenseDate" example:"2024-05-01"`
	Status      string          `json:"status" example:"PENDING"`
	SubmittedBy *UserRefDTO     `json:"submittedBy,omitempty"`
	Category    *CategoryDTO    `json:"category,omitempty"`
	Receipt     *ReceiptRefDTO  `json:"receipt,omitempty"`
}

type ExpenseDetailsResponseDTO struct {
	ExpenseResponseDTO
	SubmittedAt  time.Time   `json:"submittedAt" example:"2024-05-02T10:00:00Z"`
	ApprovedAt   *time.Time  `json:"approvedAt,omitempty"`
	ApprovedBy   *UserRefDTO `json:"approvedBy,omitempty"`
	DenialReason *string     `json:"denialReason,omitempty"`
}

type DenyRequestDTO struct {
	DenialReason string `json:"denialReason" validate:"required" example:"Receipt is not readable"`
}

type CommentRequestDTO struct {
	CommentText string `json:"commentText" validate:"required,max=2000" example:"Please attach the invoice"`
}

type CommentResponseDTO struct {
	ID          int         `json:"id" example:"7"`
	CommentText string      `json:"commentText" example:"Please attach the invoice"`
	CommentedAt time.Time   `json:"commentedAt" example:"2024-05-02T11:00:00Z"`
	Author      *UserRefDTO `json:"author,omitempty"`
}

// NewExpenseResponse builds the list projection of e. Relations that were not loaded are left out.
func NewExpenseResponse(e *domain.Expense) ExpenseResponseDTO {
	resp := ExpenseResponseDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate.Format(DateLayout),
		Status:      string(e.Status),
		SubmittedBy: NewUserRef(e.SubmittedBy),
		Category:    NewCategory(e.Category),
	}
	if e.Receipt != nil {
		resp.Receipt = &ReceiptRefDTO{ID: e.Receipt.ID, FileURL: e.Receipt.FileURL}
	}
	return resp
}

func NewExpenseResponses(expenses []domain.Expense) []ExpenseResponseDTO {
	resp := make([]ExpenseResponseDTO, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, NewExpenseResponse(&expenses[i]))
	}
	return resp
}

func NewExpenseDetailsResponse(e *domain.Expense) ExpenseDetailsResponseDTO {
	return ExpenseDetailsResponseDTO{
		ExpenseResponseDTO: NewExpenseResponse(e),
		SubmittedAt:        e.SubmittedAt,
		ApprovedAt:         e.ApprovedAt,
		ApprovedBy:         NewUserRef(e.ApprovedBy),
		DenialReason:       e.DenialReason,
	}
}

func NewCommentResponse(c *domain.ExpenseComment) CommentResponseDTO {
	return CommentResponseDTO{
		ID:          c.ID,
		CommentText: c.Text,
		CommentedAt: c.CommentedAt,
		Author:      NewUserRef(c.Author),
	}
}

func NewCommentResponses(comments []domain.ExpenseComment) []CommentResponseDTO {
	resp := make([]CommentResponseDTO, 0, len(comments))
	for i := range comments {
		resp = append(resp, NewCommentResponse(&comments[i]))
	}
	return resp
}
