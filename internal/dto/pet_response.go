// File: internal/dto/pet_response.go
package dto

import (
	"time"

	"pet-adoption/internal/model"
)

// swagger:model dto.PetResponse
type PetResponse struct {
	ID          string    `json:"id" example:"6f1c2d3e-0000-4000-8000-000000000002"`
	Name        string    `json:"name" example:"Buddy"`
	Category    string    `json:"category" example:"dog"`
	Breed       string    `json:"breed" example:"Shiba Inu"`
	Gender      string    `json:"gender" example:"male"`
	Weight      float64   `json:"weight" example:"9.5"`
	Height      float64   `json:"height" example:"38"`
	Description string    `json:"description" example:"Friendly and calm"`
	Available   bool      `json:"available" example:"true"`
	ImageURL    string    `json:"image_url" example:"/api/pets/6f1c2d3e-0000-4000-8000-000000000002/image"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewPetResponse(p *model.Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Breed:       p.Breed,
		Gender:      string(p.Gender),
		Weight:      p.Weight,
		Height:      p.Height,
		Description: p.Description,
		Available:   p.Available,
		ImageURL:    "/api/pets/" + p.ID + "/image",
		CreatedAt:   p.CreatedAt,
	}
}

func NewPetResponses(pets []model.Pet) []PetResponse {
	out := make([]PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, NewPetResponse(&pets[i]))
	}
	return out
}
