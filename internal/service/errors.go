package service

import (
	"errors"
	"fmt"
)

// 錯誤分類，handler 依此對應 HTTP 狀態碼
var (
	ErrAuthentication         = errors.New("invalid credentials")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrValidation             = errors.New("validation error")
	ErrNotFoundOrUnavailable  = errors.New("pet not found or not available")
	ErrPetNotFound            = errors.New("pet not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
)

// ErrUserNotFound 令牌有效但帳號已不存在
var ErrUserNotFound = fmt.Errorf("%w: user not found", ErrAuthentication)
