// File: internal/service/authentication.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

var (
	randRead        = rand.Read
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

const refreshTokenPrefix = "refresh_token:"

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID string     `json:"uid"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *CustomClaims) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

// Actor 為執行操作的已驗證使用者
type Actor struct {
	UserID string
	Role   model.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

func ActorFromClaims(c *CustomClaims) Actor {
	if c == nil {
		return Actor{}
	}
	return Actor{UserID: c.UserID, Role: c.Role}
}

// RefreshTokenData 存放於 Redis 的 refresh token 內容
type RefreshTokenData struct {
	UserID string     `json:"user_id"`
	Role   model.Role `json:"role"`
}

// AuthenticateUser 以 bcrypt 比對明文密碼
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if user.PasswordHash == "" {
		return ErrAuthentication
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrAuthentication
	}
	return nil
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 JWT
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// IssueRefreshToken 產生隨機 refresh token 並寫入 Redis
func IssueRefreshToken(ctx context.Context, c cache.Cache, user model.User, ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	data, err := jsonMarshal(RefreshTokenData{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	if err := c.Set(ctx, refreshTokenPrefix+token, data, ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	return token, nil
}

// ConsumeRefreshToken 以 GETDEL 取出並作廢 refresh token；同一 token 只有一次呼叫能成功
func ConsumeRefreshToken(ctx context.Context, c cache.Cache, token string) (*RefreshTokenData, error) {
	raw, err := c.GetDel(ctx, refreshTokenPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, fmt.Errorf("ConsumeRefreshToken: %w", err)
	}
	var data RefreshTokenData
	if err := jsonUnmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("ConsumeRefreshToken: %w", err)
	}
	return &data, nil
}
