package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/database"
	"pet-adoption/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, pet_id, pet_name, user_id, shipping_name, shipping_address, shipping_phone, status, created_at, updated_at`

type OrderFilter struct {
	UserID string
	Status model.OrderStatus
}

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID,
		&o.PetID,
		&o.PetName,
		&o.UserID,
		&o.ShippingName,
		&o.ShippingAddress,
		&o.ShippingPhone,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

func CreateOrder(ctx context.Context, db database.Querier, o *model.Order) (*model.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	row := db.QueryRow(ctx,
		`INSERT INTO orders (id, pet_id, pet_name, user_id, shipping_name, shipping_address, shipping_phone, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		o.ID,
		o.PetID,
		o.PetName,
		o.UserID,
		o.ShippingName,
		o.ShippingAddress,
		o.ShippingPhone,
		o.Status,
	)
	if err := row.Scan(&o.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", mapErr(err))
	}
	return o, nil
}

func GetOrderByID(ctx context.Context, db database.Querier, orderID string) (*model.Order, error) {
	row := db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("GetOrderByID: %w", mapErr(err))
	}
	return o, nil
}

func ListOrders(ctx context.Context, db database.Querier, f OrderFilter) ([]model.Order, error) {
	var (
		conds []string
		args  []any
	)
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	sql := `SELECT ` + orderColumns + ` FROM orders`
	if len(conds) > 0 {
		sql += ` WHERE ` + strings.Join(conds, " AND ")
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("ListOrders: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus 僅在目前狀態為 from 時更新並寫入 updated_at；
// 沒有符合的資料列時回傳 ErrNotFound，由呼叫端判斷訂單是否存在。
func UpdateOrderStatus(ctx context.Context, db database.Querier, orderID string, from, to model.OrderStatus, at time.Time) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`UPDATE orders SET status = $2, updated_at = $3
		 WHERE id = $1 AND status = $4
		 RETURNING `+orderColumns,
		orderID,
		to,
		at,
		from,
	)
	o := &model.Order{}
	if err := scanOrder(row, o); err != nil {
		return nil, fmt.Errorf("UpdateOrderStatus: %w", mapErr(err))
	}
	return o, nil
}
