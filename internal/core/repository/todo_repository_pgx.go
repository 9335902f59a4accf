package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

const todoColumns = `id, user_id, title, completed, priority, due_date, tags, sort_order, created_at, updated_at`

// PgxTodoRepository implements domain.TodoRepository using pgxpool.
type PgxTodoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository creates a new PgxTodoRepository.
func NewTodoRepository(pool *pgxpool.Pool) *PgxTodoRepository {
	return &PgxTodoRepository{pool: pool}
}

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Completed, &t.Priority,
		&t.DueDate, &t.Tags, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// ListByUser returns the user's todos ordered by sort order, then
// completion state, then newest first.
func (r *PgxTodoRepository) ListByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos
		WHERE user_id = $1
		ORDER BY sort_order ASC, completed ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Completed, &t.Priority,
			&t.DueDate, &t.Tags, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// GetByID returns the todo with the given id.
// Returns (nil, nil) when not found.
func (r *PgxTodoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`
	return scanTodo(r.pool.QueryRow(ctx, query, id))
}

// NextSortOrder returns the position after the user's current last todo.
func (r *PgxTodoRepository) NextSortOrder(ctx context.Context, userID string) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM todos WHERE user_id = $1`

	var next int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// Create inserts the todo.
func (r *PgxTodoRepository) Create(ctx context.Context, t domain.Todo) error {
	query := `INSERT INTO todos (id, user_id, title, completed, priority, due_date, tags, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.UserID, t.Title, t.Completed, t.Priority, t.DueDate, t.Tags, t.SortOrder)
	return err
}

// Update applies the non-nil fields of upd.
func (r *PgxTodoRepository) Update(ctx context.Context, id string, upd domain.UpdateTodoRequest) error {
	query := `
		UPDATE todos SET
			title      = COALESCE($2, title),
			priority   = COALESCE($3, priority),
			due_date   = COALESCE($4, due_date),
			tags       = COALESCE($5, tags),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, upd.Title, upd.Priority, upd.DueDate, upd.Tags)
	return err
}

// SetCompleted flips the completion flag.
func (r *PgxTodoRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := `UPDATE todos SET completed = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, completed)
	return err
}

// Delete removes the todo.
func (r *PgxTodoRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM todos WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// Reorder applies the new sort positions inside one transaction. Rows that
// do not belong to userID are not updated.
func (r *PgxTodoRepository) Reorder(ctx context.Context, userID string, items []domain.OrderUpdate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE todos SET sort_order = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`
	for _, item := range items {
		if _, err := tx.Exec(ctx, query, item.ID, userID, item.SortOrder); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
