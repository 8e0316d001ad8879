// File: internal/dto/create_pet_request.go
package dto

// CreatePetRequest 以 multipart/form-data 上傳，圖片欄位為 image
// swagger:model dto.CreatePetRequest
type CreatePetRequest struct {
	Name        string  `form:"name" validate:"required" example:"Buddy"`
	Category    string  `form:"category" validate:"required" example:"dog"`
	Breed       string  `form:"breed" validate:"required" example:"Shiba Inu"`
	Gender      string  `form:"gender" validate:"required,oneof=male female" example:"male"`
	Weight      float64 `form:"weight" validate:"gt=0" example:"9.5"`
	Height      float64 `form:"height" validate:"gt=0" example:"38"`
	Description string  `form:"description" example:"Friendly and calm"`
}
