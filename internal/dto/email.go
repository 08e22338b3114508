package dto

type EmailRequestDTO struct {
	To       string `json:"to" validate:"required,email" example:"alice@example.com"`
	Username string `json:"username" validate:"required" example:"alice"`
	Role     string `json:"role" validate:"required" example:"EMPLOYEE"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Email sent"`
}
