// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
	Name     string `json:"name" validate:"required" example:"Alice"`
	Address  string `json:"address" example:"1 Main St, Taipei"`
	Phone    string `json:"phone" example:"0912345678"`
}
