// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     503 {object} dto.PingResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		resp := dto.PingResponse{Status: "ok", Database: "ok", Cache: "ok"}
		if err := db.Ping(ctx); err != nil {
			resp.Status, resp.Database = "degraded", "unhealthy"
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			resp.Status, resp.Cache = "degraded", "unhealthy"
		}
		if resp.Status != "ok" {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
