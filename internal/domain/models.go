package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleManager    Role = "MANAGER"
	RoleAccountant Role = "ACCOUNTANT"
	RoleAdmin      Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAccountant, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether users with this role may approve or deny expenses.
func (r Role) CanReview() bool {
	return r == RoleAccountant || r == RoleManager || r == RoleAdmin
}

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

type ExpenseCategory struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type ExpenseStatus string

const (
	// ExpenseStatusPending submitted and waiting for review.
	ExpenseStatusPending ExpenseStatus = "PENDING"
	// ExpenseStatusApproved reviewed and accepted, terminal.
	ExpenseStatusApproved ExpenseStatus = "APPROVED"
	// ExpenseStatusDenied reviewed and rejected with a reason, terminal.
	ExpenseStatusDenied ExpenseStatus = "DENIED"
)

// Expense is a reimbursement claim. Category, SubmittedBy, ApprovedBy, Receipt and Comments
// are only populated by the queries that join them.
type Expense struct {
	ID            int             `db:"id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	ExpenseDate   time.Time       `db:"expense_date"`
	SubmittedAt   time.Time       `db:"submitted_at"`
	Status        ExpenseStatus   `db:"status"`
	ApprovedAt    *time.Time      `db:"approved_at"`
	DenialReason  *string         `db:"denial_reason"`
	CategoryID    int             `db:"category_id"`
	SubmittedByID int             `db:"submitted_by_user_id"`
	ApprovedByID  *int            `db:"approved_by_user_id"`
	Version       int             `db:"version"`

	Category    *ExpenseCategory
	SubmittedBy *User
	ApprovedBy  *User
	Receipt     *ExpenseReceipt
	Comments    []ExpenseComment
}

type ExpenseReceipt struct {
	ID         int       `db:"id"`
	ExpenseID  int       `db:"expense_id"`
	FileName   string    `db:"file_name"`
	FileType   string    `db:"file_type"`
	FileURL    string    `db:"file_url"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type ExpenseComment struct {
	ID          int       `db:"id"`
	ExpenseID   int       `db:"expense_id"`
	AuthorID    int       `db:"user_id"`
	Text        string    `db:"comment_text"`
	CommentedAt time.Time `db:"commented_at"`

	Author *User
}

type Customer struct {
	ID                  int             `db:"id"`
	Name                string          `db:"name"`
	ContactInfo         string          `db:"contact_info"`
	CreditLimit         decimal.Decimal `db:"credit_limit"`
	OutstandingPayments decimal.Decimal `db:"outstanding_payments"`
	Remarks             string          `db:"remarks"`
}

type Inventory struct {
	ID            int             `db:"id"`
	ProductName   string          `db:"product_name"`
	Category      string          `db:"category"`
	StockQuantity int             `db:"stock_quantity"`
	ReorderLevel  int             `db:"reorder_level"`
	PricePerUnit  decimal.Decimal `db:"price_per_unit"`
}

type Order struct {
	ID            int             `db:"id"`
	Number        string          `db:"order_number"`
	OrderDate     time.Time       `db:"order_date"`
	Status        string          `db:"status"`
	PaymentStatus string          `db:"payment_status"`
	Total         decimal.Decimal `db:"total"`
	CustomerID    *int            `db:"customer_id"`
	InventoryID   *int            `db:"inventory_id"`
}

// Notification is a templated message queued for delivery.
type Notification struct {
	Template   string
	Subject    string
	Recipients []string
	Variables  map[string]any
}
