package domain

import (
	"context"
	"time"
)

// Todo is a single task on a user's list. SortOrder drives the
// drag-and-drop ordering in the client.
type Todo struct {
	ID        string     `json:"id"`
	UserID    string     `json:"-"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Tags      string     `json:"tags"`
	SortOrder int        `json:"order"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CreateTodoRequest is the payload for creating a todo.
type CreateTodoRequest struct {
	Title    string     `json:"title"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Tags     string     `json:"tags"`
}

// UpdateTodoRequest carries a partial todo edit. Nil means "leave as is".
type UpdateTodoRequest struct {
	Title    *string    `json:"title,omitempty"`
	Priority *string    `json:"priority,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Tags     *string    `json:"tags,omitempty"`
}

// OrderUpdate assigns a new sort position to one item during a reorder.
type OrderUpdate struct {
	ID        string `json:"id"`
	SortOrder int    `json:"order"`
}

// TodoRepository defines the data-access contract for todos.
type TodoRepository interface {
	// ListByUser returns the user's todos ordered by sort order, then
	// completion state, then newest first.
	ListByUser(ctx context.Context, userID string) ([]Todo, error)

	// GetByID returns the todo with the given id regardless of owner;
	// ownership checks are the Logic layer's job.
	// Returns (nil, nil) when not found.
	GetByID(ctx context.Context, id string) (*Todo, error)

	// NextSortOrder returns the position after the user's current last todo.
	NextSortOrder(ctx context.Context, userID string) (int, error)

	// Create inserts the todo.
	Create(ctx context.Context, t Todo) error

	// Update applies the non-nil fields of upd.
	Update(ctx context.Context, id string, upd UpdateTodoRequest) error

	// SetCompleted flips the completion flag.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// Delete removes the todo.
	Delete(ctx context.Context, id string) error

	// Reorder applies the given sort positions to the user's todos in a
	// single transaction. Items not owned by userID are left untouched.
	Reorder(ctx context.Context, userID string, items []OrderUpdate) error
}
