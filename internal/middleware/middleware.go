package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pet-adoption/internal/database"
	"pet-adoption/internal/service"
	"pet-adoption/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getUserByID = store.GetUserByID

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := strings.TrimSpace(parts[1])
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		claims := c.Get(ContextUserKey).(*service.CustomClaims)
		if !claims.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	})
}

// RequireAdminUser 先以 token 的 role 擋下一般使用者，再從資料庫確認帳號仍存在且仍是管理員。
// token 有效期內被刪除或降級的帳號因此立即失去管理權限。
func RequireAdminUser(db database.Querier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAdmin(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			user, err := getUserByID(c.Request().Context(), db, claims.UserID)
			if errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to load user")
			}
			if !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		})
	}
}

// ActorFrom 取出 RequireAuth 存入的使用者；未經驗證時回傳空 Actor
func ActorFrom(c echo.Context) service.Actor {
	claims, _ := c.Get(ContextUserKey).(*service.CustomClaims)
	return service.ActorFromClaims(claims)
}
