package domain

import (
	"context"
	"time"
)

// Entity statuses shown in the workspace table.
const (
	EntityStatusActive     = "Active"
	EntityStatusInProgress = "In Progress"
	EntityStatusDraft      = "Draft"
)

// Entity is a tracked workspace item (project, document, ...) shared
// across the team rather than owned by a single user.
type Entity struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	Assignee       string    `json:"assignee"`
	AssigneeAvatar string    `json:"assigneeAvatar,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// CreateEntityRequest is the payload for creating an entity.
type CreateEntityRequest struct {
	Name           string `json:"name"`
	Status         string `json:"status"`
	Assignee       string `json:"assignee"`
	AssigneeAvatar string `json:"assigneeAvatar"`
}

// UpdateEntityRequest carries a partial entity edit. Nil means "leave as is".
type UpdateEntityRequest struct {
	Name           *string `json:"name,omitempty"`
	Status         *string `json:"status,omitempty"`
	Assignee       *string `json:"assignee,omitempty"`
	AssigneeAvatar *string `json:"assigneeAvatar,omitempty"`
}

// ValidEntityStatus reports whether s is one of the known statuses.
func ValidEntityStatus(s string) bool {
	switch s {
	case EntityStatusActive, EntityStatusInProgress, EntityStatusDraft:
		return true
	}
	return false
}

// EntityRepository defines the data-access contract for entities.
type EntityRepository interface {
	// List returns all entities, most recently updated first.
	List(ctx context.Context) ([]Entity, error)

	// GetByID returns the entity with the given id.
	// Returns (nil, nil) when not found.
	GetByID(ctx context.Context, id string) (*Entity, error)

	// Create inserts the entity.
	Create(ctx context.Context, e Entity) error

	// Update applies the non-nil fields of upd and bumps LastUpdated.
	Update(ctx context.Context, id string, upd UpdateEntityRequest) error

	// Delete removes the entity.
	Delete(ctx context.Context, id string) error
}
