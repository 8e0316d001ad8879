// File: internal/service/adoption.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/database"
	"pet-adoption/internal/model"
	"pet-adoption/internal/store"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// 以下變數供測試覆寫
var (
	withTx            = database.WithTx
	reservePet        = store.ReservePet
	releasePet        = store.ReleasePet
	createOrder       = store.CreateOrder
	getOrderByID      = store.GetOrderByID
	listOrders        = store.ListOrders
	updateOrderStatus = store.UpdateOrderStatus
)

// SubmitInput 領養申請內容
type SubmitInput struct {
	PetID           string
	ShippingName    string
	ShippingAddress string
	ShippingPhone   string
}

func (in SubmitInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.PetID) == "" {
		missing = append(missing, "pet_id")
	}
	if strings.TrimSpace(in.ShippingName) == "" {
		missing = append(missing, "shipping_name")
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		missing = append(missing, "shipping_address")
	}
	if strings.TrimSpace(in.ShippingPhone) == "" {
		missing = append(missing, "shipping_phone")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// DecisionPolicy 控制審核時的附帶行為
type DecisionPolicy struct {
	// RestoreOnReject 駁回時將寵物重新設為可領養
	RestoreOnReject bool
}

// SubmitAdoption 由一般使用者送出領養申請。
// 寵物保留與訂單建立在同一交易中完成；同一隻寵物最多只會有一筆成功。
func SubmitAdoption(ctx context.Context, db database.DB, actor Actor, in SubmitInput) (*model.Order, error) {
	if actor.UserID == "" {
		return nil, ErrAuthentication
	}
	if actor.IsAdmin() {
		return nil, fmt.Errorf("%w: admins cannot submit adoption requests", ErrPermissionDenied)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	var order *model.Order
	err := withTx(ctx, db, func(tx pgx.Tx) error {
		pet, err := reservePet(ctx, tx, in.PetID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFoundOrUnavailable
		}
		if err != nil {
			return err
		}

		order, err = createOrder(ctx, tx, &model.Order{
			PetID:           pet.ID,
			PetName:         pet.Name,
			UserID:          actor.UserID,
			ShippingName:    strings.TrimSpace(in.ShippingName),
			ShippingAddress: strings.TrimSpace(in.ShippingAddress),
			ShippingPhone:   strings.TrimSpace(in.ShippingPhone),
			Status:          model.OrderStatusPending,
		})
		// pet 已在同一交易中鎖定，外鍵失敗只可能是 user 已被刪除
		if errors.Is(err, store.ErrMissingReference) {
			return ErrUserNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("adoption submitted",
		zap.String("order_id", order.ID),
		zap.String("pet_id", order.PetID),
		zap.String("user_id", order.UserID))
	return order, nil
}

// DecideOrder 由管理員核准或駁回 pending 訂單
func DecideOrder(ctx context.Context, db database.DB, actor Actor, orderID string, status model.OrderStatus, policy DecisionPolicy) (*model.Order, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrPermissionDenied)
	}
	if !status.IsTerminal() {
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
	}

	var order *model.Order
	err := withTx(ctx, db, func(tx pgx.Tx) error {
		o, err := updateOrderStatus(ctx, tx, orderID, model.OrderStatusPending, status, timeNow().UTC())
		if errors.Is(err, store.ErrNotFound) {
			current, gerr := getOrderByID(ctx, tx, orderID)
			if errors.Is(gerr, store.ErrNotFound) {
				return ErrOrderNotFound
			}
			if gerr != nil {
				return gerr
			}
			return fmt.Errorf("%w: order is already %s", ErrInvalidStateTransition, current.Status)
		}
		if err != nil {
			return err
		}

		if status == model.OrderStatusRejected && policy.RestoreOnReject {
			if err := releasePet(ctx, tx, o.PetID); err != nil {
				return err
			}
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order decided",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
		zap.String("admin_id", actor.UserID))
	return order, nil
}

// ListOrders 管理員可看全部訂單，一般使用者只看自己的
func ListOrders(ctx context.Context, db database.Querier, actor Actor, status model.OrderStatus) ([]model.Order, error) {
	if actor.UserID == "" {
		return nil, ErrAuthentication
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	f := store.OrderFilter{Status: status}
	if !actor.IsAdmin() {
		f.UserID = actor.UserID
	}
	return listOrders(ctx, db, f)
}
