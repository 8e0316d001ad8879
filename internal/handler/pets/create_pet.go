// File: internal/handler/pets/create_pet.go
package pets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/dto"
	"pet-adoption/internal/model"
	"pet-adoption/internal/worker"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ImageConfig 圖片上傳與快取設定
type ImageConfig struct {
	MaxBytes int64
	CacheTTL time.Duration
}

// CreatePetHandler 管理員新增寵物，圖片必填
// @Summary     新增寵物
// @Tags        pets
// @Accept      multipart/form-data
// @Produce     json
// @Param       name        formData string true  "名稱"
// @Param       category    formData string true  "分類"
// @Param       breed       formData string true  "品種"
// @Param       gender      formData string true  "性別 (male/female)"
// @Param       weight      formData number true  "體重"
// @Param       height      formData number true  "身高"
// @Param       description formData string false "描述"
// @Param       image       formData file   true  "寵物照片"
// @Success     201 {object} dto.PetResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     413 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /pets [post]
func CreatePetHandler(db database.Querier, cch cache.Cache, pool worker.Pool, cfg ImageConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreatePetRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		fh, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "image is required"})
		}
		if fh.Size > cfg.MaxBytes {
			return c.JSON(http.StatusRequestEntityTooLarge, dto.HTTPError{Message: fmt.Sprintf("image exceeds %d bytes", cfg.MaxBytes)})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "failed to read image"})
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, cfg.MaxBytes+1))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "failed to read image"})
		}
		if int64(len(data)) > cfg.MaxBytes {
			return c.JSON(http.StatusRequestEntityTooLarge, dto.HTTPError{Message: fmt.Sprintf("image exceeds %d bytes", cfg.MaxBytes)})
		}
		if len(data) == 0 {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "image is empty"})
		}

		contentType := fh.Header.Get(echo.HeaderContentType)
		if !strings.HasPrefix(contentType, "image/") {
			contentType = http.DetectContentType(data)
		}
		if !strings.HasPrefix(contentType, "image/") {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "image must be an image file"})
		}

		pet, err := createPet(c.Request().Context(), db, &model.Pet{
			Name:        strings.TrimSpace(req.Name),
			Category:    strings.TrimSpace(req.Category),
			Breed:       strings.TrimSpace(req.Breed),
			Gender:      model.Gender(req.Gender),
			Weight:      req.Weight,
			Height:      req.Height,
			Description: req.Description,
			ImageType:   contentType,
		}, data)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create pet"})
		}

		img := &model.PetImage{ContentType: contentType, Data: data}
		petID := pet.ID
		// 預熱快取是盡力而為，佇列滿了就跳過，不拖慢請求
		if err := pool.TrySubmit(func(ctx context.Context) {
			if err := primePetImage(ctx, cch, petID, img, cfg.CacheTTL); err != nil {
				zap.L().Warn("prime pet image", zap.String("pet_id", petID), zap.Error(err))
			}
		}); err != nil {
			zap.L().Warn("skip image priming", zap.String("pet_id", petID), zap.Error(err))
		}

		return c.JSON(http.StatusCreated, dto.NewPetResponse(pet))
	}
}
