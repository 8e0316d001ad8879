// File: internal/model/order.go
package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// IsTerminal approved 與 rejected 之後不再變動
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return true
	}
	return false
}

type Order struct {
	ID              string      `db:"id" json:"id"`
	PetID           string      `db:"pet_id" json:"pet_id"`
	PetName         string      `db:"pet_name" json:"pet_name"`
	UserID          string      `db:"user_id" json:"user_id"`
	ShippingName    string      `db:"shipping_name" json:"shipping_name"`
	ShippingAddress string      `db:"shipping_address" json:"shipping_address"`
	ShippingPhone   string      `db:"shipping_phone" json:"shipping_phone"`
	Status          OrderStatus `db:"status" json:"status"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	// UpdatedAt 只在狀態由 pending 變更時寫入
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
