// File: internal/dto/create_order_request.go
package dto

// swagger:model dto.CreateOrderRequest
type CreateOrderRequest struct {
	PetID           string `json:"pet_id" validate:"required" example:"6f1c2d3e-0000-4000-8000-000000000002"`
	ShippingName    string `json:"shipping_name" validate:"required" example:"Alice"`
	ShippingAddress string `json:"shipping_address" validate:"required" example:"1 Main St, Taipei"`
	ShippingPhone   string `json:"shipping_phone" validate:"required" example:"0912345678"`
}
