// File: internal/handler/orders/orders.go
package orders

import (
	"net/http"

	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/handler"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/model"
	"pet-adoption/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	submitAdoption = service.SubmitAdoption
	decideOrder    = service.DecideOrder
	listOrders     = service.ListOrders
)

// ListOrdersHandler 一般使用者只看到自己的申請，管理員看到全部
// @Summary     領養申請清單
// @Tags        orders
// @Produce     json
// @Param       status query string false "pending / approved / rejected"
// @Success     200 {array}  dto.OrderResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /orders [get]
func ListOrdersHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := model.OrderStatus(c.QueryParam("status"))
		orders, err := listOrders(c.Request().Context(), db, middleware.ActorFrom(c), status)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
	}
}

// CreateOrderHandler 送出領養申請
// @Summary     送出領養申請
// @Description 寵物必須為可領養狀態；成功後寵物即標記為不可領養
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       body body     dto.CreateOrderRequest true "申請資料"
// @Success     201  {object} dto.OrderResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /orders [post]
func CreateOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateOrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		order, err := submitAdoption(c.Request().Context(), db, middleware.ActorFrom(c), service.SubmitInput{
			PetID:           req.PetID,
			ShippingName:    req.ShippingName,
			ShippingAddress: req.ShippingAddress,
			ShippingPhone:   req.ShippingPhone,
		})
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
	}
}

// UpdateOrderStatusHandler 管理員核准或駁回申請
// @Summary     審核領養申請
// @Description 只有 pending 的申請可以被審核；重複審核回傳 409
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id   path     string                       true "申請 ID"
// @Param       body body     dto.UpdateOrderStatusRequest true "審核結果"
// @Success     200  {object} dto.OrderResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /orders/{id}/status [put]
func UpdateOrderStatusHandler(db database.DB, policy service.DecisionPolicy) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.UpdateOrderStatusRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		order, err := decideOrder(c.Request().Context(), db, middleware.ActorFrom(c), c.Param("id"), model.OrderStatus(req.Status), policy)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderResponse(order))
	}
}
