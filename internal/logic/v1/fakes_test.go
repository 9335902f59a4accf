package v1

import (
	"context"
	"sort"
	"time"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

// fakeUserRepo is an in-memory domain.UserRepository keyed by email.
type fakeUserRepo struct {
	byID map[string]*domain.UserRow
	err  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*domain.UserRow{}}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.UserRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.UserRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *fakeUserRepo) Create(_ context.Context, id, name, email, passwordHash string) error {
	if r.err != nil {
		return r.err
	}
	r.byID[id] = &domain.UserRow{
		ID: id, Name: name, Email: email, Role: "User", PasswordHash: passwordHash,
	}
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id string, upd domain.ProfileUpdate) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	return nil
}

// fakeTodoRepo is an in-memory domain.TodoRepository.
type fakeTodoRepo struct {
	todos map[string]*domain.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[string]*domain.Todo{}}
}

func (r *fakeTodoRepo) ListByUser(_ context.Context, userID string) ([]domain.Todo, error) {
	out := []domain.Todo{}
	for _, t := range r.todos {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, id string) (*domain.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTodoRepo) NextSortOrder(_ context.Context, userID string) (int, error) {
	next := 0
	for _, t := range r.todos {
		if t.UserID == userID && t.SortOrder >= next {
			next = t.SortOrder + 1
		}
	}
	return next, nil
}

func (r *fakeTodoRepo) Create(_ context.Context, t domain.Todo) error {
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.todos[t.ID] = &t
	return nil
}

func (r *fakeTodoRepo) Update(_ context.Context, id string, upd domain.UpdateTodoRequest) error {
	t := r.todos[id]
	if t == nil {
		return nil
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		t.DueDate = upd.DueDate
	}
	if upd.Tags != nil {
		t.Tags = *upd.Tags
	}
	return nil
}

func (r *fakeTodoRepo) SetCompleted(_ context.Context, id string, completed bool) error {
	if t := r.todos[id]; t != nil {
		t.Completed = completed
	}
	return nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id string) error {
	delete(r.todos, id)
	return nil
}

func (r *fakeTodoRepo) Reorder(_ context.Context, userID string, items []domain.OrderUpdate) error {
	for _, item := range items {
		if t := r.todos[item.ID]; t != nil && t.UserID == userID {
			t.SortOrder = item.SortOrder
		}
	}
	return nil
}
