// File: internal/handler/pets/pet_image.go
package pets

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/service"

	"github.com/labstack/echo/v4"
)

// GetPetImageHandler 回傳寵物照片
// @Summary     寵物照片
// @Tags        pets
// @Produce     image/jpeg,image/png,image/gif,image/webp
// @Param       id path string true "寵物 ID"
// @Success     200 {file} binary
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /pets/{id}/image [get]
func GetPetImageHandler(db database.Querier, cch cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		img, err := getPetImage(c.Request().Context(), db, cch, c.Param("id"), ttl)
		if errors.Is(err, service.ErrPetNotFound) {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Pet image not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load image"})
		}
		c.Response().Header().Set("Cache-Control", "private, max-age=3600")
		return c.Blob(http.StatusOK, img.ContentType, img.Data)
	}
}
