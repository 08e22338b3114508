package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Username string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=8" example:"s3cretpass"`
	Role     string `json:"role" validate:"required,oneof=EMPLOYEE MANAGER ACCOUNTANT ADMIN" example:"EMPLOYEE"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"s3cretpass"`
}

type LoginResponseDTO struct {
	Token  string `json:"token"`
	UserID int    `json:"userId" example:"1"`
	Role   string `json:"role" example:"ACCOUNTANT"`
}
