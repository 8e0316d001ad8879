package service

import (
	"context"
	"fmt"
	"strings"

	"pet-adoption/internal/database"
	"pet-adoption/internal/model"
	"pet-adoption/internal/store"

	"go.uber.org/zap"
)

var (
	countAdmins = store.CountAdmins
	createUser  = store.CreateUser
)

// EnsureAdmin 在沒有任何管理員時建立預設管理員帳號，回傳是否有建立
func EnsureAdmin(ctx context.Context, db database.Querier, email, password, name string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}
	n, err := countAdmins(ctx, db)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("EnsureAdmin: %w", err)
	}
	if name == "" {
		name = "Admin User"
	}
	admin, err := createUser(ctx, db, &model.User{
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Name:         name,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	zap.L().Info("admin user created", zap.String("email", admin.Email), zap.String("user_id", admin.ID))
	return true, nil
}
