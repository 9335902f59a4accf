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

// Todo priorities accepted from the client.
var todoPriorities = map[string]bool{"low": true, "medium": true, "high": true}

// TodoService implements the todo-list business rules. Every operation is
// scoped to the calling user; an item owned by someone else is
// indistinguishable from a missing one.
type TodoService struct {
	todos domain.TodoRepository
}

// NewTodoService creates a new TodoService with the given repository.
func NewTodoService(todos domain.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// List returns the user's todos in display order.
func (s *TodoService) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	ctx, span := middleware.StartSpan(ctx, "todos.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	todos, err := s.todos.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Create appends a new todo at the end of the user's list.
func (s *TodoService) Create(ctx context.Context, userID string, req domain.CreateTodoRequest) (*domain.Todo, error) {
	ctx, span := middleware.StartSpan(ctx, "todos.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Fields: map[string][]string{
			"title": {"Title is required."},
		}}
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	if !todoPriorities[priority] {
		return nil, &ValidationError{Fields: map[string][]string{
			"priority": {"Priority must be low, medium or high."},
		}}
	}

	next, err := s.todos.NextSortOrder(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("next sort order: %w", err)
	}

	todo := domain.Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Priority:  priority,
		DueDate:   req.DueDate,
		Tags:      strings.TrimSpace(req.Tags),
		SortOrder: next,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	span.SetAttributes(attribute.String("todo.id", todo.ID))
	return s.get(ctx, userID, todo.ID)
}

// Update applies a partial edit to the user's todo.
func (s *TodoService) Update(ctx context.Context, userID, id string, req domain.UpdateTodoRequest) (*domain.Todo, error) {
	ctx, span := middleware.StartSpan(ctx, "todos.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("todo.id", id),
	))
	defer span.End()

	if _, err := s.get(ctx, userID, id); err != nil {
		return nil, err
	}
	if req.Priority != nil && !todoPriorities[*req.Priority] {
		return nil, &ValidationError{Fields: map[string][]string{
			"priority": {"Priority must be low, medium or high."},
		}}
	}

	if err := s.todos.Update(ctx, id, req); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return s.get(ctx, userID, id)
}

// Toggle flips the completion state of the user's todo.
func (s *TodoService) Toggle(ctx context.Context, userID, id string) (*domain.Todo, error) {
	ctx, span := middleware.StartSpan(ctx, "todos.toggle", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("todo.id", id),
	))
	defer span.End()

	todo, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.todos.SetCompleted(ctx, id, !todo.Completed); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("toggle todo: %w", err)
	}
	return s.get(ctx, userID, id)
}

// Delete removes the user's todo.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	ctx, span := middleware.StartSpan(ctx, "todos.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("todo.id", id),
	))
	defer span.End()

	if _, err := s.get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.todos.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

// Reorder persists a drag-and-drop reorder of the user's list.
func (s *TodoService) Reorder(ctx context.Context, userID string, items []domain.OrderUpdate) error {
	ctx, span := middleware.StartSpan(ctx, "todos.reorder", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int("items", len(items)),
	))
	defer span.End()

	if len(items) == 0 {
		return nil
	}
	if err := s.todos.Reorder(ctx, userID, items); err != nil {
		span.RecordError(err)
		return fmt.Errorf("reorder todos: %w", err)
	}
	return nil
}

// get loads the todo and enforces ownership.
func (s *TodoService) get(ctx context.Context, userID, id string) (*domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query todo %q: %w", id, err)
	}
	if todo == nil || todo.UserID != userID {
		return nil, fmt.Errorf("todo %q: %w", id, ErrNotFound)
	}
	return todo, nil
}
