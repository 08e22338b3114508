package dto

import (
	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/shopspring/decimal"
)

type CustomerRequestDTO struct {
	Name                string          `json:"name" validate:"required,max=255" example:"ACME GmbH"`
	ContactInfo         string          `json:"contactInfo" example:"billing@acme.example"`
	CreditLimit         decimal.Decimal `json:"creditLimit" swaggertype:"string" example:"10000.00"`
	OutstandingPayments decimal.Decimal `json:"outstandingPayments" swaggertype:"string" example:"250.00"`
	Remarks             string          `json:"remarks" example:"Pays on the 15th"`
}

type CustomerResponseDTO struct {
	ID int `json:"id" example:"1"`
	CustomerRequestDTO
}

func (r CustomerRequestDTO) ToDomain() *domain.Customer {
	return &domain.Customer{
		Name:                r.Name,
		ContactInfo:         r.ContactInfo,
		CreditLimit:         r.CreditLimit,
		OutstandingPayments: r.OutstandingPayments,
		Remarks:             r.Remarks,
	}
}

func NewCustomerResponse(c *domain.Customer) CustomerResponseDTO {
	return CustomerResponseDTO{
		ID: c.ID,
		CustomerRequestDTO: CustomerRequestDTO{
			Name:                c.Name,
			ContactInfo:         c.ContactInfo,
			CreditLimit:         c.CreditLimit,
			OutstandingPayments: c.OutstandingPayments,
			Remarks:             c.Remarks,
		},
	}
}
