package dto

import (
	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/shopspring/decimal"
)

type InventoryRequestDTO struct {
	ProductName   string          `json:"productName" validate:"required,max=255" example:"A4 paper"`
	Category      string          `json:"category" example:"Office"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0" example:"120"`
	ReorderLevel  int             `json:"reorderLevel" validate:"gte=0" example:"20"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit" swaggertype:"string" example:"4.99"`
}

type InventoryResponseDTO struct {
	ID int `json:"id" example:"1"`
	InventoryRequestDTO
}

func (r InventoryRequestDTO) ToDomain() *domain.Inventory {
	return &domain.Inventory{
		ProductName:   r.ProductName,
		Category:      r.Category,
		StockQuantity: r.StockQuantity,
		ReorderLevel:  r.ReorderLevel,
		PricePerUnit:  r.PricePerUnit,
	}
}

func NewInventoryResponse(i *domain.Inventory) InventoryResponseDTO {
	return InventoryResponseDTO{
		ID: i.ID,
		InventoryRequestDTO: InventoryRequestDTO{
			ProductName:   i.ProductName,
			Category:      i.Category,
			StockQuantity: i.StockQuantity,
			ReorderLevel:  i.ReorderLevel,
			PricePerUnit:  i.PricePerUnit,
		},
	}
}
