package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

const entityColumns = `id, name, status, assignee, COALESCE(assignee_avatar, ''), last_updated`

// PgxEntityRepository implements domain.EntityRepository using pgxpool.
type PgxEntityRepository struct {
	pool *pgxpool.Pool
}

// NewEntityRepository creates a new PgxEntityRepository.
func NewEntityRepository(pool *pgxpool.Pool) *PgxEntityRepository {
	return &PgxEntityRepository{pool: pool}
}

// List returns all entities, most recently updated first.
func (r *PgxEntityRepository) List(ctx context.Context) ([]domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities ORDER BY last_updated DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := []domain.Entity{}
	for rows.Next() {
		var e domain.Entity
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Status, &e.Assignee, &e.AssigneeAvatar, &e.LastUpdated,
		); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// GetByID returns the entity with the given id.
// Returns (nil, nil) when not found.
func (r *PgxEntityRepository) GetByID(ctx context.Context, id string) (*domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE id = $1`

	var e domain.Entity
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Status, &e.Assignee, &e.AssigneeAvatar, &e.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Create inserts the entity.
func (r *PgxEntityRepository) Create(ctx context.Context, e domain.Entity) error {
	query := `INSERT INTO entities (id, name, status, assignee, assignee_avatar)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, e.ID, e.Name, e.Status, e.Assignee, e.AssigneeAvatar)
	return err
}

// Update applies the non-nil fields of upd and bumps last_updated.
func (r *PgxEntityRepository) Update(ctx context.Context, id string, upd domain.UpdateEntityRequest) error {
	query := `
		UPDATE entities SET
			name            = COALESCE($2, name),
			status          = COALESCE($3, status),
			assignee        = COALESCE($4, assignee),
			assignee_avatar = COALESCE($5, assignee_avatar),
			last_updated    = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, upd.Name, upd.Status, upd.Assignee, upd.AssigneeAvatar)
	return err
}

// Delete removes the entity.
func (r *PgxEntityRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM entities WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
