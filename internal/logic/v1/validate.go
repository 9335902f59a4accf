package v1

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateSignup checks the signup form and returns a *ValidationError
// carrying per-field messages, or nil when the input is acceptable.
func validateSignup(req domain.SignupRequest) error {
	fe := fieldErrors{}

	if len(strings.TrimSpace(req.Name)) < 2 {
		fe.add("name", "Name must be at least 2 characters long.")
	}
	if !emailPattern.MatchString(req.Email) {
		fe.add("email", "Please enter a valid email.")
	}
	validatePassword(req.Password, fe)

	return fe.err()
}

func validatePassword(pw string, fe fieldErrors) {
	if len(pw) < 8 {
		fe.add("password", "Password must be at least 8 characters long.")
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		fe.add("password", "Password must contain at least one uppercase letter.")
	}
	if !hasDigit {
		fe.add("password", "Password must contain at least one number.")
	}
	if !hasSymbol {
		fe.add("password", "Password must contain at least one special character.")
	}
}
