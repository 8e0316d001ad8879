package client

import (
	"context"
	"net/http"
	"net/url"

	"pet-adoption/internal/dto"
)

// ListOrders status 為空字串時不篩選
func (c *Client) ListOrders(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	path := "/api/orders"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}
	var out []dto.OrderResponse
	if err := c.sendJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecideOrder status 為 approved 或 rejected，需要管理員令牌
func (c *Client) DecideOrder(ctx context.Context, orderID, status string) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	path := "/api/orders/" + url.PathEscape(orderID) + "/status"
	if err := c.sendJSON(ctx, http.MethodPut, path, dto.UpdateOrderStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
