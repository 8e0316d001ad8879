// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌、refresh token 與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.Querier, cch cache.Cache, cfg TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		ctx := c.Request().Context()

		user, err := getUserByEmail(ctx, db, strings.ToLower(req.Email))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}

		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*user, cfg.AccessTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: fmt.Sprintf("failed to issue token: %v", err)})
		}
		refresh, err := issueRefreshToken(ctx, cch, *user, cfg.RefreshTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, loginResponse(user, token, refresh, cfg.AccessTTL))
	}
}
