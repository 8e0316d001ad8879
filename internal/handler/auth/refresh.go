// File: internal/handler/auth/refresh.go
package auth

import (
	"errors"
	"net/http"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/service"
	"pet-adoption/internal/store"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以 refresh token 換發新令牌，舊的 refresh token 會失效
// @Summary     換發令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RefreshRequest true "refresh token"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/refresh [post]
func RefreshHandler(db database.Querier, cch cache.Cache, cfg TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		ctx := c.Request().Context()

		// token 在此即作廢，併發的重複換發只有一個能拿到資料
		data, err := consumeRefreshToken(ctx, cch, req.RefreshToken)
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid refresh token"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to validate refresh token"})
		}

		user, err := getUserByID(ctx, db, data.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid refresh token"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}

		token, err := issueAccessToken(*user, cfg.AccessTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}
		refresh, err := issueRefreshToken(ctx, cch, *user, cfg.RefreshTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, loginResponse(user, token, refresh, cfg.AccessTTL))
	}
}
