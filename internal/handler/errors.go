// File: internal/handler/errors.go
package handler

import (
	"errors"
	"net/http"

	"pet-adoption/internal/dto"
	"pet-adoption/internal/service"
	"pet-adoption/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatusFor 將 service/store 的錯誤對應到 HTTP 狀態碼
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAuthentication), errors.Is(err, service.ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFoundOrUnavailable),
		errors.Is(err, service.ErrPetNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidStateTransition), errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError 回傳 dto.HTTPError；500 不外洩內部錯誤訊息
func WriteError(c echo.Context, err error) error {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
		msg = "internal server error"
	}
	return c.JSON(status, dto.HTTPError{Message: msg})
}
