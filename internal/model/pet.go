// File: internal/model/pet.go
package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Pet 不含圖片內容，圖片另存於 pets.image_data
type Pet struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Breed       string    `db:"breed" json:"breed"`
	Gender      Gender    `db:"gender" json:"gender"`
	Weight      float64   `db:"weight" json:"weight"`
	Height      float64   `db:"height" json:"height"`
	Description string    `db:"description" json:"description"`
	Available   bool      `db:"available" json:"available"`
	ImageType   string    `db:"image_type" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type PetImage struct {
	ContentType string
	Data        []byte
}
