package v1

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/secure-dash/internal/core/domain"
	"github.com/duynhne/secure-dash/internal/password"
	"github.com/duynhne/secure-dash/middleware"
)

// AuthService implements credential validation and account management.
// It depends on repository interfaces (injected via the constructor) and
// MUST NOT access the database or SQL directly. Session issuance is the
// web layer's job: this service only decides who the caller is.
type AuthService struct {
	users domain.UserRepository
}

// NewAuthService creates a new AuthService with the given repository.
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login validates the credential pair and returns the account on success.
// Unknown email and wrong password are distinct sentinel outcomes; both
// leave the caller unauthenticated.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	email := normalizeEmail(req.Email)

	row, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	if row == nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrUserNotFound)
	}

	if !password.Verify(req.Password, row.PasswordHash) {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
	}

	user := row.User()
	span.SetAttributes(
		attribute.String("user.id", user.ID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return user, nil
}

// Signup validates the form, creates the account with a hashed password and
// returns it. The password never reaches the repository in clear form.
func (s *AuthService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.signup", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if err := validateSignup(req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return nil, err
	}

	email := normalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		span.SetAttributes(attribute.Bool("signup.success", false))
		return nil, fmt.Errorf("register %q: %w", email, ErrUserExists)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	id := uuid.NewString()
	name := strings.TrimSpace(req.Name)
	if err := s.users.Create(ctx, id, name, email, hash); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(
		attribute.String("user.id", id),
		attribute.Bool("signup.success", true),
	)
	span.AddEvent("user.registered")

	return &domain.User{ID: id, Name: name, Email: email, Role: "User"}, nil
}

// GetUser returns the account for the given subject id, for the identity
// probe endpoint.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.get_user", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	row, err := s.users.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("lookup user %q: %w", id, ErrUserNotFound)
	}

	return row.User(), nil
}

// UpdateProfile applies a partial profile edit and returns the result.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, req domain.UpdateProfileRequest) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.update_profile", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", id),
	))
	defer span.End()

	if req.Name != nil && len(strings.TrimSpace(*req.Name)) < 2 {
		return nil, &ValidationError{Fields: map[string][]string{
			"name": {"Name must be at least 2 characters long."},
		}}
	}

	upd := domain.ProfileUpdate{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Location:  req.Location,
		Bio:       req.Bio,
		Phone:     req.Phone,
	}
	if err := s.users.UpdateProfile(ctx, id, upd); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.GetUser(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
