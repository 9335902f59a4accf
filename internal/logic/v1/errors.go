// Package v1 provides the business logic for API version 1: authentication,
// todos, notes, entities and profile.
//
// Error Handling:
// This package defines sentinel errors for the common failure outcomes.
// They are wrapped with context using fmt.Errorf("%w") when returned and
// mapped to HTTP statuses in the web layer with errors.Is / errors.As.
//
// Example usage:
//
//	if row == nil {
//	    return nil, fmt.Errorf("authenticate %q: %w", email, ErrUserNotFound)
//	}
//
//	if !password.Verify(req.Password, row.PasswordHash) {
//	    return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
//	}
package v1

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the v1 API.
var (
	// ErrInvalidCredentials indicates the password does not match.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates no account exists for the email or id.
	// The login handler surfaces this distinctly from bad credentials;
	// see the enumeration note in DESIGN.md.
	// HTTP Status: 401 Unauthorized
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates the email is already registered.
	// HTTP Status: 409 Conflict
	ErrUserExists = errors.New("user already exists")

	// ErrNotFound indicates the requested item does not exist or is not
	// owned by the caller. The two cases are deliberately identical.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")
)

// ValidationError reports per-field input problems. It is returned by
// signup and the CRUD create/update operations and rendered as a field
// error map by the web layer.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// fieldErrors accumulates messages while validating a request.
type fieldErrors map[string][]string

func (fe fieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}
