// File: internal/dto/order_response.go
package dto

import (
	"time"

	"pet-adoption/internal/model"
)

// swagger:model dto.OrderResponse
type OrderResponse struct {
	ID              string     `json:"id" example:"6f1c2d3e-0000-4000-8000-000000000003"`
	PetID           string     `json:"pet_id" example:"6f1c2d3e-0000-4000-8000-000000000002"`
	PetName         string     `json:"pet_name" example:"Buddy"`
	UserID          string     `json:"user_id" example:"6f1c2d3e-0000-4000-8000-000000000001"`
	ShippingName    string     `json:"shipping_name" example:"Alice"`
	ShippingAddress string     `json:"shipping_address" example:"1 Main St, Taipei"`
	ShippingPhone   string     `json:"shipping_phone" example:"0912345678"`
	Status          string     `json:"status" example:"pending"`
	CreatedAt       time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" example:"2025-05-02T09:00:00Z"`
}

func NewOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		PetID:           o.PetID,
		PetName:         o.PetName,
		UserID:          o.UserID,
		ShippingName:    o.ShippingName,
		ShippingAddress: o.ShippingAddress,
		ShippingPhone:   o.ShippingPhone,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
