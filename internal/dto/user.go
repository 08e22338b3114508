package dto

import (
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
)

type UserResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	Username  string    `json:"username" example:"alice"`
	Role      string    `json:"role" example:"EMPLOYEE"`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"createdAt" example:"2024-05-01T09:30:00Z"`
}

// UserRefDTO is the short form of a user embedded into other responses.
type UserRefDTO struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserRef(u *domain.User) *UserRefDTO {
	if u == nil {
		return nil
	}
	return &UserRefDTO{ID: u.ID, Username: u.Username}
}
