package domain

// LoginRequest is the credential pair submitted by the login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest is the account-creation form. Field-level validation
// (name length, password strength) happens in the Logic layer so the
// client gets per-field messages rather than binding errors.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a partial profile edit.
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// AuthResponse is returned by login and signup. RedirectTo is the landing
// route the client should navigate to after the session cookie is set.
type AuthResponse struct {
	User       *User  `json:"user"`
	RedirectTo string `json:"redirectTo"`
}
