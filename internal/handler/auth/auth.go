// File: internal/handler/auth/auth.go
package auth

import (
	"time"

	"pet-adoption/internal/dto"
	"pet-adoption/internal/model"
	"pet-adoption/internal/service"
	"pet-adoption/internal/store"
)

var (
	getUserByEmail      = store.GetUserByEmail
	getUserByID         = store.GetUserByID
	createUser          = store.CreateUser
	hashPassword        = service.HashPassword
	authenticateUser    = service.AuthenticateUser
	issueAccessToken    = service.IssueAccessToken
	issueRefreshToken   = service.IssueRefreshToken
	consumeRefreshToken = service.ConsumeRefreshToken
)

// TokenConfig 令牌有效期限
type TokenConfig struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func loginResponse(user *model.User, access, refresh string, ttl time.Duration) dto.LoginResponse {
	return dto.LoginResponse{
		AccessToken:  access,
		TokenType:    "bearer",
		ExpiresIn:    int(ttl.Seconds()),
		RefreshToken: refresh,
		User:         dto.NewUserResponse(user),
	}
}
