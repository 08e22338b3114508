package dto

import (
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrderRequestDTO struct {
	Number        string          `json:"number" validate:"required,numeric" example:"12345678903"`
	OrderDate     time.Time       `json:"orderDate" example:"2024-05-01T09:30:00Z"`
	Status        string          `json:"status" example:"NEW"`
	PaymentStatus string          `json:"paymentStatus" example:"UNPAID"`
	Total         decimal.Decimal `json:"total" swaggertype:"string" example:"99.90"`
	CustomerID    *int            `json:"customerId,omitempty" example:"1"`
	InventoryID   *int            `json:"inventoryId,omitempty" example:"2"`
}

// UpdateOrderRequestDTO only changes the fields that are present in the request.
type UpdateOrderRequestDTO struct {
	Number        *string          `json:"number,omitempty" validate:"omitempty,numeric" example:"12345678903"`
	OrderDate     *time.Time       `json:"orderDate,omitempty"`
	Status        *string          `json:"status,omitempty" example:"SHIPPED"`
	PaymentStatus *string          `json:"paymentStatus,omitempty" example:"PAID"`
	Total         *decimal.Decimal `json:"total,omitempty" swaggertype:"string" example:"99.90"`
	CustomerID    *int             `json:"customerId,omitempty"`
	InventoryID   *int             `json:"inventoryId,omitempty"`
}

type OrderResponseDTO struct {
	ID            int             `json:"id" example:"1"`
	Number        string          `json:"number" example:"12345678903"`
	OrderDate     time.Time       `json:"orderDate" example:"2024-05-01T09:30:00Z"`
	Status        string          `json:"status" example:"NEW"`
	PaymentStatus string          `json:"paymentStatus" example:"UNPAID"`
	Total         decimal.Decimal `json:"total" swaggertype:"string" example:"99.90"`
	CustomerID    *int            `json:"customerId,omitempty" example:"1"`
	InventoryID   *int            `json:"inventoryId,omitempty" example:"2"`
}

func (r CreateOrderRequestDTO) ToDomain() *domain.Order {
	return &domain.Order{
		Number:        r.Number,
		OrderDate:     r.OrderDate,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		Total:         r.Total,
		CustomerID:    r.CustomerID,
		InventoryID:   r.InventoryID,
	}
}

func NewOrderResponse(o *domain.Order) OrderResponseDTO {
	return OrderResponseDTO{
		ID:            o.ID,
		Number:        o.Number,
		OrderDate:     o.OrderDate,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Total:         o.Total,
		CustomerID:    o.CustomerID,
		InventoryID:   o.InventoryID,
	}
}
