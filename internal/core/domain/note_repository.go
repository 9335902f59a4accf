package domain

import (
	"context"
	"time"
)

// Note is a sticky note on the notes board.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	Pinned    bool      `json:"pinned"`
	Tags      string    `json:"tags"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateNoteRequest is the payload for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
	Tags    string `json:"tags"`
}

// UpdateNoteRequest carries a partial note edit. Nil means "leave as is".
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Color   *string `json:"color,omitempty"`
	Tags    *string `json:"tags,omitempty"`
}

// NoteRepository defines the data-access contract for notes.
type NoteRepository interface {
	// ListByUser returns the user's notes: pinned first, then by sort
	// order, then most recently updated.
	ListByUser(ctx context.Context, userID string) ([]Note, error)

	// GetByID returns the note with the given id regardless of owner.
	// Returns (nil, nil) when not found.
	GetByID(ctx context.Context, id string) (*Note, error)

	// NextSortOrder returns the position after the user's current last note.
	NextSortOrder(ctx context.Context, userID string) (int, error)

	// Create inserts the note.
	Create(ctx context.Context, n Note) error

	// Update applies the non-nil fields of upd.
	Update(ctx context.Context, id string, upd UpdateNoteRequest) error

	// SetPinned flips the pinned flag.
	SetPinned(ctx context.Context, id string, pinned bool) error

	// Delete removes the note.
	Delete(ctx context.Context, id string) error

	// Reorder applies the given sort positions to the user's notes in a
	// single transaction. Items not owned by userID are left untouched.
	Reorder(ctx context.Context, userID string, items []OrderUpdate) error
}
