package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

func TestTodoCreate_AppendsAtEnd(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "second"})
	require.NoError(t, err)

	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.Equal(t, "medium", first.Priority)

	// Another user's list starts at zero.
	other, err := svc.Create(ctx, "u2", domain.CreateTodoRequest{Title: "theirs"})
	require.NoError(t, err)
	assert.Equal(t, 0, other.SortOrder)
}

func TestTodoCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	var ve *ValidationError

	_, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "   "})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "title")

	_, err = svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "x", Priority: "urgent"})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "priority")
}

func TestTodoToggle(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "task"})
	require.NoError(t, err)
	require.False(t, todo.Completed)

	toggled, err := svc.Toggle(ctx, "u1", todo.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	back, err := svc.Toggle(ctx, "u1", todo.ID)
	require.NoError(t, err)
	assert.False(t, back.Completed)
}

func TestTodoOwnership(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "mine"})
	require.NoError(t, err)

	// Another user's access looks exactly like a missing item.
	_, err = svc.Toggle(ctx, "u2", todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Delete(ctx, "u2", todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Update(ctx, "u2", todo.ID, domain.UpdateTodoRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	// Still there for its owner.
	todos, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestTodoReorder(t *testing.T) {
	t.Parallel()

	repo := newFakeTodoRepo()
	svc := NewTodoService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "a"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "b"})
	require.NoError(t, err)
	theirs, err := svc.Create(ctx, "u2", domain.CreateTodoRequest{Title: "theirs"})
	require.NoError(t, err)

	err = svc.Reorder(ctx, "u1", []domain.OrderUpdate{
		{ID: b.ID, SortOrder: 0},
		{ID: a.ID, SortOrder: 1},
		// Foreign item in the payload must be ignored.
		{ID: theirs.ID, SortOrder: 99},
	})
	require.NoError(t, err)

	todos, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, b.ID, todos[0].ID)
	assert.Equal(t, a.ID, todos[1].ID)

	foreign, err := repo.GetByID(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, foreign.SortOrder)
}

func TestTodoDelete(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(newFakeTodoRepo())
	ctx := context.Background()

	todo, err := svc.Create(ctx, "u1", domain.CreateTodoRequest{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", todo.ID))
	err = svc.Delete(ctx, "u1", todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
