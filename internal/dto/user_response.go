// File: internal/dto/user_response.go
package dto

import (
	"time"

	"pet-adoption/internal/model"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"6f1c2d3e-0000-4000-8000-000000000001"`
	Email     string    `json:"email" example:"alice@example.com"`
	Name      string    `json:"name" example:"Alice"`
	Address   string    `json:"address" example:"1 Main St, Taipei"`
	Phone     string    `json:"phone" example:"0912345678"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Address:   u.Address,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
