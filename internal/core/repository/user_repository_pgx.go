package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

const userColumns = `id, name, email, role,
	COALESCE(avatar_url, ''), COALESCE(location, ''), COALESCE(bio, ''), COALESCE(phone, ''),
	password_hash`

// PgxUserRepository implements domain.UserRepository using pgxpool.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{pool: pool}
}

func scanUserRow(row pgx.Row) (*domain.UserRow, error) {
	var u domain.UserRow
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Role,
		&u.AvatarURL, &u.Location, &u.Bio, &u.Phone,
		&u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns the user matching the given email.
// Returns (nil, nil) when no user is found.
func (r *PgxUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserRow, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUserRow(r.pool.QueryRow(ctx, query, email))
}

// GetByID returns the user with the given id.
// Returns (nil, nil) when no user is found.
func (r *PgxUserRepository) GetByID(ctx context.Context, id string) (*domain.UserRow, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUserRow(r.pool.QueryRow(ctx, query, id))
}

// ExistsByEmail returns true when an account with the email already exists.
func (r *PgxUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a new user.
func (r *PgxUserRepository) Create(ctx context.Context, id, name, email, passwordHash string) error {
	query := `INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, id, name, email, passwordHash)
	return err
}

// UpdateProfile applies the non-nil fields of upd to the user.
func (r *PgxUserRepository) UpdateProfile(ctx context.Context, id string, upd domain.ProfileUpdate) error {
	query := `
		UPDATE users SET
			name       = COALESCE($2, name),
			avatar_url = COALESCE($3, avatar_url),
			location   = COALESCE($4, location),
			bio        = COALESCE($5, bio),
			phone      = COALESCE($6, phone),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, upd.Name, upd.AvatarURL, upd.Location, upd.Bio, upd.Phone)
	return err
}
