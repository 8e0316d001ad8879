package store

import (
	"context"
	"fmt"
	"strings"

	"pet-adoption/internal/database"
	"pet-adoption/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// likeEscaper 讓搜尋字串中的 % _ \ 以字面比對
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const petColumns = `id, name, category, breed, gender, weight, height, description, available, image_type, created_at`

// PetFilter 列表查詢條件；空字串代表不限制
type PetFilter struct {
	AvailableOnly bool
	Category      string
	Query         string
}

func scanPet(row pgx.Row, p *model.Pet) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Breed,
		&p.Gender,
		&p.Weight,
		&p.Height,
		&p.Description,
		&p.Available,
		&p.ImageType,
		&p.CreatedAt,
	)
}

func CreatePet(ctx context.Context, db database.Querier, p *model.Pet, image []byte) (*model.Pet, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Available = true
	row := db.QueryRow(ctx,
		`INSERT INTO pets (id, name, category, breed, gender, weight, height, description, available, image_data, image_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at`,
		p.ID,
		p.Name,
		p.Category,
		p.Breed,
		p.Gender,
		p.Weight,
		p.Height,
		p.Description,
		p.Available,
		image,
		p.ImageType,
	)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePet: %w", mapErr(err))
	}
	return p, nil
}

func GetPetByID(ctx context.Context, db database.Querier, petID string) (*model.Pet, error) {
	row := db.QueryRow(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, petID)
	p := &model.Pet{}
	if err := scanPet(row, p); err != nil {
		return nil, fmt.Errorf("GetPetByID: %w", mapErr(err))
	}
	return p, nil
}

func ListPets(ctx context.Context, db database.Querier, f PetFilter) ([]model.Pet, error) {
	var (
		conds []string
		args  []any
	)
	if f.AvailableOnly {
		conds = append(conds, "available")
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		args = append(args, strings.ToLower(c))
		conds = append(conds, fmt.Sprintf("lower(category) = $%d", len(args)))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+likeEscaper.Replace(q)+"%")
		conds = append(conds, fmt.Sprintf(`(name ILIKE $%d ESCAPE '\' OR breed ILIKE $%d ESCAPE '\')`, len(args), len(args)))
	}

	sql := `SELECT ` + petColumns + ` FROM pets`
	if len(conds) > 0 {
		sql += ` WHERE ` + strings.Join(conds, " AND ")
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPets: %w", err)
	}
	defer rows.Close()

	pets := make([]model.Pet, 0)
	for rows.Next() {
		var p model.Pet
		if err := scanPet(rows, &p); err != nil {
			return nil, fmt.Errorf("ListPets: %w", err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPets: %w", err)
	}
	return pets, nil
}

func GetPetImage(ctx context.Context, db database.Querier, petID string) (*model.PetImage, error) {
	img := &model.PetImage{}
	row := db.QueryRow(ctx, `SELECT image_type, image_data FROM pets WHERE id = $1`, petID)
	if err := row.Scan(&img.ContentType, &img.Data); err != nil {
		return nil, fmt.Errorf("GetPetImage: %w", mapErr(err))
	}
	if len(img.Data) == 0 {
		return nil, fmt.Errorf("GetPetImage: %w", ErrNotFound)
	}
	return img, nil
}

// ReservePet 以條件式更新將可領養的寵物標記為不可領養。
// 同一隻寵物同時被多次預約時只有一筆會成功，其餘回傳 ErrNotFound。
func ReservePet(ctx context.Context, db database.Querier, petID string) (*model.Pet, error) {
	row := db.QueryRow(ctx,
		`UPDATE pets SET available = FALSE
		 WHERE id = $1 AND available
		 RETURNING `+petColumns,
		petID,
	)
	p := &model.Pet{}
	if err := scanPet(row, p); err != nil {
		return nil, fmt.Errorf("ReservePet: %w", mapErr(err))
	}
	return p, nil
}

func ReleasePet(ctx context.Context, db database.Querier, petID string) error {
	tag, err := db.Exec(ctx, `UPDATE pets SET available = TRUE WHERE id = $1`, petID)
	if err != nil {
		return fmt.Errorf("ReleasePet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ReleasePet: %w", ErrNotFound)
	}
	return nil
}
