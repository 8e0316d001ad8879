// File: internal/dto/login_response.go
package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	AccessToken  string       `json:"access_token" example:"eyJhbGciOi..."`
	TokenType    string       `json:"token_type" example:"bearer"`
	ExpiresIn    int          `json:"expires_in" example:"86400"`
	RefreshToken string       `json:"refresh_token,omitempty" example:"..."`
	User         UserResponse `json:"user"`
}
