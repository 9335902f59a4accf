package v1

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/secure-dash/internal/core/domain"
	"github.com/duynhne/secure-dash/middleware"
)

// NoteService implements the notes-board business rules, scoped to the
// calling user the same way TodoService is.
type NoteService struct {
	notes domain.NoteRepository
}

// NewNoteService creates a new NoteService with the given repository.
func NewNoteService(notes domain.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

// List returns the user's notes in display order.
func (s *NoteService) List(ctx context.Context, userID string) ([]domain.Note, error) {
	ctx, span := middleware.StartSpan(ctx, "notes.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create appends a new note at the end of the user's board.
func (s *NoteService) Create(ctx context.Context, userID string, req domain.CreateNoteRequest) (*domain.Note, error) {
	ctx, span := middleware.StartSpan(ctx, "notes.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Fields: map[string][]string{
			"title": {"Title is required."},
		}}
	}

	color := req.Color
	if color == "" {
		color = "default"
	}

	next, err := s.notes.NextSortOrder(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("next sort order: %w", err)
	}

	note := domain.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   strings.TrimSpace(req.Content),
		Color:     color,
		Tags:      strings.TrimSpace(req.Tags),
		SortOrder: next,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert note: %w", err)
	}

	span.SetAttributes(attribute.String("note.id", note.ID))
	return s.get(ctx, userID, note.ID)
}

// Update applies a partial edit to the user's note.
func (s *NoteService) Update(ctx context.Context, userID, id string, req domain.UpdateNoteRequest) (*domain.Note, error) {
	ctx, span := middleware.StartSpan(ctx, "notes.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("note.id", id),
	))
	defer span.End()

	if _, err := s.get(ctx, userID, id); err != nil {
		return nil, err
	}
	if err := s.notes.Update(ctx, id, req); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update note: %w", err)
	}
	return s.get(ctx, userID, id)
}

// TogglePin flips the pinned state of the user's note.
func (s *NoteService) TogglePin(ctx context.Context, userID, id string) (*domain.Note, error) {
	ctx, span := middleware.StartSpan(ctx, "notes.toggle_pin", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("note.id", id),
	))
	defer span.End()

	note, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.notes.SetPinned(ctx, id, !note.Pinned); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("toggle pin: %w", err)
	}
	return s.get(ctx, userID, id)
}

// Delete removes the user's note.
func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	ctx, span := middleware.StartSpan(ctx, "notes.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("note.id", id),
	))
	defer span.End()

	if _, err := s.get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// Reorder persists a drag-and-drop reorder of the user's board.
func (s *NoteService) Reorder(ctx context.Context, userID string, items []domain.OrderUpdate) error {
	ctx, span := middleware.StartSpan(ctx, "notes.reorder", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("items", len(items)),
	))
	defer span.End()

	if len(items) == 0 {
		return nil
	}
	if err := s.notes.Reorder(ctx, userID, items); err != nil {
		span.RecordError(err)
		return fmt.Errorf("reorder notes: %w", err)
	}
	return nil
}

func (s *NoteService) get(ctx context.Context, userID, id string) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query note %q: %w", id, err)
	}
	if note == nil || note.UserID != userID {
		return nil, fmt.Errorf("note %q: %w", id, ErrNotFound)
	}
	return note, nil
}
