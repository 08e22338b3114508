package dto

import "github.com/GlebRadaev/erpfinance/internal/domain"

type CategoryRequestDTO struct {
	Name string `json:"name" validate:"required,max=100" example:"Travel"`
}

type CategoryDTO struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Travel"`
}

func NewCategory(c *domain.ExpenseCategory) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{ID: c.ID, Name: c.Name}
}
