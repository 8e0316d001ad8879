// File: internal/handler/pets/pets.go
package pets

import (
	"net/http"
	"strings"

	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/handler"
	"pet-adoption/internal/service"
	"pet-adoption/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listPets      = store.ListPets
	createPet     = store.CreatePet
	getPetImage   = service.GetPetImage
	primePetImage = service.PrimePetImage
)

func filterFrom(c echo.Context) store.PetFilter {
	return store.PetFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Query:    strings.TrimSpace(c.QueryParam("q")),
	}
}

// ListPetsHandler 列出可領養的寵物
// @Summary     可領養寵物清單
// @Tags        pets
// @Produce     json
// @Param       category query string false "分類 (不分大小寫)"
// @Param       q        query string false "以名稱或品種搜尋"
// @Success     200 {array}  dto.PetResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /pets [get]
func ListPetsHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		f := filterFrom(c)
		f.AvailableOnly = true
		pets, err := listPets(c.Request().Context(), db, f)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewPetResponses(pets))
	}
}

// ListAllPetsHandler 管理員列出所有寵物（含已被領養）
// @Summary     所有寵物清單
// @Tags        admin
// @Produce     json
// @Param       category query string false "分類 (不分大小寫)"
// @Param       q        query string false "以名稱或品種搜尋"
// @Success     200 {array}  dto.PetResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /admin/pets [get]
func ListAllPetsHandler(db database.Querier) echo.HandlerFunc {
	return func(c echo.Context) error {
		pets, err := listPets(c.Request().Context(), db, filterFrom(c))
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewPetResponses(pets))
	}
}
