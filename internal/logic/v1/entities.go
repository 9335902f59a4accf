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

// EntityService implements the workspace-entity rules. Entities are shared
// across the team, so there is no per-user ownership check; the request
// gate already guarantees an authenticated caller.
type EntityService struct {
	entities domain.EntityRepository
}

// NewEntityService creates a new EntityService with the given repository.
func NewEntityService(entities domain.EntityRepository) *EntityService {
	return &EntityService{entities: entities}
}

// List returns all entities, most recently updated first.
func (s *EntityService) List(ctx context.Context) ([]domain.Entity, error) {
	ctx, span := middleware.StartSpan(ctx, "entities.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	entities, err := s.entities.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return entities, nil
}

// Create inserts a new entity.
func (s *EntityService) Create(ctx context.Context, req domain.CreateEntityRequest) (*domain.Entity, error) {
	ctx, span := middleware.StartSpan(ctx, "entities.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	fe := fieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		fe.add("name", "Name is required.")
	}
	status := req.Status
	if status == "" {
		status = domain.EntityStatusDraft
	}
	if !domain.ValidEntityStatus(status) {
		fe.add("status", "Status must be Active, In Progress or Draft.")
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	entity := domain.Entity{
		ID:             uuid.NewString(),
		Name:           name,
		Status:         status,
		Assignee:       strings.TrimSpace(req.Assignee),
		AssigneeAvatar: req.AssigneeAvatar,
	}
	if err := s.entities.Create(ctx, entity); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert entity: %w", err)
	}

	span.SetAttributes(attribute.String("entity.id", entity.ID))
	return s.get(ctx, entity.ID)
}

// Update applies a partial edit.
func (s *EntityService) Update(ctx context.Context, id string, req domain.UpdateEntityRequest) (*domain.Entity, error) {
	ctx, span := middleware.StartSpan(ctx, "entities.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("entity.id", id),
	))
	defer span.End()

	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}
	if req.Status != nil && !domain.ValidEntityStatus(*req.Status) {
		return nil, &ValidationError{Fields: map[string][]string{
			"status": {"Status must be Active, In Progress or Draft."},
		}}
	}

	if err := s.entities.Update(ctx, id, req); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update entity: %w", err)
	}
	return s.get(ctx, id)
}

// Delete removes the entity.
func (s *EntityService) Delete(ctx context.Context, id string) error {
	ctx, span := middleware.StartSpan(ctx, "entities.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("entity.id", id),
	))
	defer span.End()

	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.entities.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete entity: %w", err)
	}
	return nil
}

func (s *EntityService) get(ctx context.Context, id string) (*domain.Entity, error) {
	entity, err := s.entities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query entity %q: %w", id, err)
	}
	if entity == nil {
		return nil, fmt.Errorf("entity %q: %w", id, ErrNotFound)
	}
	return entity, nil
}
