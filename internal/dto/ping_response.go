// File: internal/dto/ping_response.go
package dto

// swagger:model dto.PingResponse
type PingResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Cache    string `json:"cache" example:"ok"`
}
