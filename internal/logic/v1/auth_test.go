package v1

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/secure-dash/internal/core/domain"
	"github.com/duynhne/secure-dash/internal/password"
)

func signupReq() domain.SignupRequest {
	return domain.SignupRequest{Name: "Jo", Email: "jo@x.com", Password: "Abcdefg1!"}
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := NewAuthService(users)

	user, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Jo", user.Name)
	assert.Equal(t, "jo@x.com", user.Email)
	assert.Equal(t, "User", user.Role)

	// Stored credential is hashed, never the clear password.
	row, err := users.GetByEmail(context.Background(), "jo@x.com")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.NotEqual(t, "Abcdefg1!", row.PasswordHash)
	assert.True(t, password.Verify("Abcdefg1!", row.PasswordHash))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupReq())
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestSignup_ValidationFieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      domain.SignupRequest
		field    string
		contains string
	}{
		{
			name:     "short name",
			req:      domain.SignupRequest{Name: "J", Email: "jo@x.com", Password: "Abcdefg1!"},
			field:    "name",
			contains: "at least 2 characters",
		},
		{
			name:     "bad email",
			req:      domain.SignupRequest{Name: "Jo", Email: "not-an-email", Password: "Abcdefg1!"},
			field:    "email",
			contains: "valid email",
		},
		{
			name:     "short password",
			req:      domain.SignupRequest{Name: "Jo", Email: "jo@x.com", Password: "Ab1!"},
			field:    "password",
			contains: "at least 8 characters",
		},
		{
			name:     "no uppercase",
			req:      domain.SignupRequest{Name: "Jo", Email: "jo@x.com", Password: "abcdefg1!"},
			field:    "password",
			contains: "uppercase",
		},
		{
			name:     "no digit",
			req:      domain.SignupRequest{Name: "Jo", Email: "jo@x.com", Password: "Abcdefgh!"},
			field:    "password",
			contains: "number",
		},
		{
			name:     "no symbol",
			req:      domain.SignupRequest{Name: "Jo", Email: "jo@x.com", Password: "Abcdefg12"},
			field:    "password",
			contains: "special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			users := newFakeUserRepo()
			_, err := NewAuthService(users).Signup(context.Background(), tt.req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Contains(t, ve.Fields, tt.field)
			assert.Contains(t, ve.Fields[tt.field][0], tt.contains)

			// Validation failure leaves no account behind.
			assert.Empty(t, users.byID)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	created, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), domain.LoginRequest{
		Email: "jo@x.com", Password: "Abcdefg1!",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestLogin_EmailNormalized(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), domain.LoginRequest{
		Email: "  JO@x.com ", Password: "Abcdefg1!",
	})
	require.NoError(t, err)
	assert.Equal(t, "jo@x.com", user.Email)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email: "nobody@x.com", Password: "Abcdefg1!",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email: "jo@x.com", Password: "Wrongpass1!",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_RepositoryError(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	users.err = errors.New("connection refused")

	_, err := NewAuthService(users).Login(context.Background(), domain.LoginRequest{
		Email: "jo@x.com", Password: "Abcdefg1!",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	created, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	user, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)

	_, err = svc.GetUser(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())
	created, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	bio := "Building dashboards."
	location := "Berlin"
	user, err := svc.UpdateProfile(context.Background(), created.ID, domain.UpdateProfileRequest{
		Bio: &bio, Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, "Building dashboards.", user.Bio)
	assert.Equal(t, "Berlin", user.Location)
	assert.Equal(t, "Jo", user.Name)

	short := "J"
	_, err = svc.UpdateProfile(context.Background(), created.ID, domain.UpdateProfileRequest{Name: &short})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
