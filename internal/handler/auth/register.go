// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/model"
	"pet-adoption/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊一般使用者帳號
// @Summary     註冊
// @Description 建立一般使用者 (role 固定為 user，Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: hash,
			Name:         strings.TrimSpace(req.Name),
			Address:      req.Address,
			Phone:        req.Phone,
			Role:         model.RoleUser,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Email already registered"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, dto.NewUserResponse(user))
	}
}
