// File: internal/handler/users/profile.go
package users

import (
	"errors"
	"net/http"

	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/service"
	"pet-adoption/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID    = store.GetUserByID
	addFavorite    = service.AddFavorite
	removeFavorite = service.RemoveFavorite
	listFavorites  = service.ListFavorites
)

// GetProfileHandler 取得目前登入者資料
// @Summary     取得個人資料
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /user/profile [get]
func GetProfileHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.ActorFrom(c)
		user, err := getUserByID(c.Request().Context(), db, actor.UserID)
		if errors.Is(err, store.ErrNotFound) {
			// 令牌有效但帳號已不存在
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
