// File: internal/dto/update_order_status_request.go
package dto

// swagger:model dto.UpdateOrderStatusRequest
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected" example:"approved"`
}
