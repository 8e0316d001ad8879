package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/model"
	"pet-adoption/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var getPetImage = store.GetPetImage

func imageKey(petID string) string {
	return "pet:image:" + petID
}

// 快取格式: <content-type>\x00<bytes>
func encodeImage(img *model.PetImage) []byte {
	buf := make([]byte, 0, len(img.ContentType)+1+len(img.Data))
	buf = append(buf, img.ContentType...)
	buf = append(buf, 0)
	return append(buf, img.Data...)
}

func decodeImage(raw []byte) (*model.PetImage, bool) {
	i := bytes.IndexByte(raw, 0)
	if i <= 0 || i == len(raw)-1 {
		return nil, false
	}
	return &model.PetImage{ContentType: string(raw[:i]), Data: raw[i+1:]}, true
}

// GetPetImage 先查 Redis，未命中再讀資料庫並回填快取
func GetPetImage(ctx context.Context, db database.Querier, c cache.Cache, petID string, ttl time.Duration) (*model.PetImage, error) {
	raw, err := c.Get(ctx, imageKey(petID)).Bytes()
	switch {
	case err == nil:
		if img, ok := decodeImage(raw); ok {
			return img, nil
		}
	case !errors.Is(err, redis.Nil):
		zap.L().Warn("image cache read failed", zap.String("pet_id", petID), zap.Error(err))
	}

	img, err := getPetImage(ctx, db, petID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPetNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := PrimePetImage(ctx, c, petID, img, ttl); err != nil {
		zap.L().Warn("image cache write failed", zap.String("pet_id", petID), zap.Error(err))
	}
	return img, nil
}

// PrimePetImage 將圖片寫入快取
func PrimePetImage(ctx context.Context, c cache.Cache, petID string, img *model.PetImage, ttl time.Duration) error {
	if err := c.Set(ctx, imageKey(petID), encodeImage(img), ttl).Err(); err != nil {
		return fmt.Errorf("PrimePetImage: %w", err)
	}
	return nil
}
