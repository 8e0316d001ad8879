// File: internal/handler/users/favorites.go
package users

import (
	"net/http"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/handler"
	"pet-adoption/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ListFavoritesHandler 列出收藏的寵物
// @Summary     收藏清單
// @Tags        users
// @Produce     json
// @Success     200 {array}  dto.PetResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /user/favorites [get]
func ListFavoritesHandler(db database.Querier, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		pets, err := listFavorites(c.Request().Context(), db, cch, middleware.ActorFrom(c).UserID)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewPetResponses(pets))
	}
}

// AddFavoriteHandler 加入收藏
// @Summary     加入收藏
// @Tags        users
// @Param       pet_id path string true "寵物 ID"
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /user/favorites/{pet_id} [put]
func AddFavoriteHandler(db database.Querier, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := addFavorite(c.Request().Context(), db, cch, middleware.ActorFrom(c).UserID, c.Param("pet_id"))
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// RemoveFavoriteHandler 移除收藏
// @Summary     移除收藏
// @Tags        users
// @Param       pet_id path string true "寵物 ID"
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /user/favorites/{pet_id} [delete]
func RemoveFavoriteHandler(cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := removeFavorite(c.Request().Context(), cch, middleware.ActorFrom(c).UserID, c.Param("pet_id")); err != nil {
			return handler.WriteError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
