package store

import (
	"context"
	"fmt"

	"pet-adoption/internal/database"
	"pet-adoption/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password_hash, name, address, phone, role, created_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Address,
		&u.Phone,
		&u.Role,
		&u.CreatedAt,
	)
}

func GetUserByID(ctx context.Context, db database.Querier, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", mapErr(err))
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", mapErr(err))
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, name, address, phone, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.Address,
		u.Phone,
		u.Role,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", mapErr(err))
	}
	return u, nil
}

func CountAdmins(ctx context.Context, db database.Querier) (int, error) {
	var n int
	row := db.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, model.RoleAdmin)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountAdmins: %w", err)
	}
	return n, nil
}
