package domain

import "context"

// User is the public shape of an account, safe to return to clients.
// The password hash never leaves the domain/repository layers.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Location  string `json:"location,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UserRow is a user record as read from the database, including the
// password hash so the Logic layer can verify credentials.
type UserRow struct {
	ID           string
	Name         string
	Email        string
	Role         string
	AvatarURL    string
	Location     string
	Bio          string
	Phone        string
	PasswordHash string
}

// User strips the credential material from a row.
func (r *UserRow) User() *User {
	return &User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		AvatarURL: r.AvatarURL,
		Location:  r.Location,
		Bio:       r.Bio,
		Phone:     r.Phone,
	}
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Name      *string
	AvatarURL *string
	Location  *string
	Bio       *string
	Phone     *string
}

// UserRepository defines the data-access contract for user records.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx directly.
type UserRepository interface {
	// GetByEmail returns the user matching the given email, the unique
	// lookup key for credentials. Returns (nil, nil) when not found.
	GetByEmail(ctx context.Context, email string) (*UserRow, error)

	// GetByID returns the user with the given id.
	// Returns (nil, nil) when not found.
	GetByID(ctx context.Context, id string) (*UserRow, error)

	// ExistsByEmail returns true when an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user with the given id and hashed password.
	Create(ctx context.Context, id, name, email, passwordHash string) error

	// UpdateProfile applies the non-nil fields of upd to the user.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error
}
