package service

import (
	"context"
	"errors"
	"fmt"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/database"
	"pet-adoption/internal/model"
	"pet-adoption/internal/store"

	"go.uber.org/zap"
)

var getPetByID = store.GetPetByID

func favoritesKey(userID string) string {
	return "favorites:" + userID
}

// AddFavorite 將寵物加入使用者收藏；寵物必須存在
func AddFavorite(ctx context.Context, db database.Querier, c cache.Cache, userID, petID string) error {
	if _, err := getPetByID(ctx, db, petID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPetNotFound
		}
		return err
	}
	if err := c.SAdd(ctx, favoritesKey(userID), petID).Err(); err != nil {
		return fmt.Errorf("AddFavorite: %w", err)
	}
	return nil
}

func RemoveFavorite(ctx context.Context, c cache.Cache, userID, petID string) error {
	if err := c.SRem(ctx, favoritesKey(userID), petID).Err(); err != nil {
		return fmt.Errorf("RemoveFavorite: %w", err)
	}
	return nil
}

// ListFavorites 回傳收藏的寵物，已刪除的寵物會自收藏中移除
func ListFavorites(ctx context.Context, db database.Querier, c cache.Cache, userID string) ([]model.Pet, error) {
	ids, err := c.SMembers(ctx, favoritesKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("ListFavorites: %w", err)
	}

	pets := make([]model.Pet, 0, len(ids))
	for _, id := range ids {
		p, err := getPetByID(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			if rmErr := c.SRem(ctx, favoritesKey(userID), id).Err(); rmErr != nil {
				zap.L().Warn("drop stale favorite", zap.String("pet_id", id), zap.Error(rmErr))
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		pets = append(pets, *p)
	}
	return pets, nil
}
