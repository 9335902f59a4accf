package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

const noteColumns = `id, user_id, title, content, color, pinned, tags, sort_order, created_at, updated_at`

// PgxNoteRepository implements domain.NoteRepository using pgxpool.
type PgxNoteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository creates a new PgxNoteRepository.
func NewNoteRepository(pool *pgxpool.Pool) *PgxNoteRepository {
	return &PgxNoteRepository{pool: pool}
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.Color,
		&n.Pinned, &n.Tags, &n.SortOrder, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// ListByUser returns the user's notes: pinned first, then by sort order,
// then most recently updated.
func (r *PgxNoteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		WHERE user_id = $1
		ORDER BY pinned DESC, sort_order ASC, updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Content, &n.Color,
			&n.Pinned, &n.Tags, &n.SortOrder, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetByID returns the note with the given id.
// Returns (nil, nil) when not found.
func (r *PgxNoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	return scanNote(r.pool.QueryRow(ctx, query, id))
}

// NextSortOrder returns the position after the user's current last note.
func (r *PgxNoteRepository) NextSortOrder(ctx context.Context, userID string) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM notes WHERE user_id = $1`

	var next int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// Create inserts the note.
func (r *PgxNoteRepository) Create(ctx context.Context, n domain.Note) error {
	query := `INSERT INTO notes (id, user_id, title, content, color, pinned, tags, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		n.ID, n.UserID, n.Title, n.Content, n.Color, n.Pinned, n.Tags, n.SortOrder)
	return err
}

// Update applies the non-nil fields of upd.
func (r *PgxNoteRepository) Update(ctx context.Context, id string, upd domain.UpdateNoteRequest) error {
	query := `
		UPDATE notes SET
			title      = COALESCE($2, title),
			content    = COALESCE($3, content),
			color      = COALESCE($4, color),
			tags       = COALESCE($5, tags),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, upd.Title, upd.Content, upd.Color, upd.Tags)
	return err
}

// SetPinned flips the pinned flag.
func (r *PgxNoteRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	query := `UPDATE notes SET pinned = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, pinned)
	return err
}

// Delete removes the note.
func (r *PgxNoteRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM notes WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// Reorder applies the new sort positions inside one transaction. Rows that
// do not belong to userID are not updated.
func (r *PgxNoteRepository) Reorder(ctx context.Context, userID string, items []domain.OrderUpdate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE notes SET sort_order = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	for _, item := range items {
		if _, err := tx.Exec(ctx, query, item.ID, userID, item.SortOrder); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
