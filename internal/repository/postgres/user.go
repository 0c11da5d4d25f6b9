package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetOrCreate upserts a user keyed on platform id and returns the internal id.
// Concurrent calls for the same platform id converge to one row: the unique
// constraint turns the insert into an update, and RETURNING always yields
// the canonical id.
func (r *UserRepo) GetOrCreate(platformID int64, username, displayName string) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (platform_id, username, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (platform_id)
		DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`
	err := r.db.QueryRow(query, platformID, username, displayName).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
