// Package v1 exposes the dashboard API over HTTP: authentication, todos,
// notes, entities and profile. Handlers translate between HTTP and the
// Logic layer; they hold no business rules of their own.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/secure-dash/internal/core/domain"
	logicv1 "github.com/duynhne/secure-dash/internal/logic/v1"
	"github.com/duynhne/secure-dash/internal/session"
	"github.com/duynhne/secure-dash/middleware"
)

// Handler groups the HTTP handlers for API v1.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth     *logicv1.AuthService
	todos    *logicv1.TodoService
	notes    *logicv1.NoteService
	entities *logicv1.EntityService
	sessions *session.Manager
}

// NewHandler creates a Handler with the given services and session manager.
func NewHandler(
	auth *logicv1.AuthService,
	todos *logicv1.TodoService,
	notes *logicv1.NoteService,
	entities *logicv1.EntityService,
	sessions *session.Manager,
) *Handler {
	return &Handler{
		auth:     auth,
		todos:    todos,
		notes:    notes,
		entities: entities,
		sessions: sessions,
	}
}

// RegisterRoutes registers all API v1 routes on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/signup", h.Signup)
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/auth/me", h.GetMe)

	rg.GET("/todos", h.ListTodos)
	rg.POST("/todos", h.CreateTodo)
	rg.PATCH("/todos/:id", h.UpdateTodo)
	rg.POST("/todos/:id/toggle", h.ToggleTodo)
	rg.DELETE("/todos/:id", h.DeleteTodo)
	rg.POST("/todos/reorder", h.ReorderTodos)

	rg.GET("/notes", h.ListNotes)
	rg.POST("/notes", h.CreateNote)
	rg.PATCH("/notes/:id", h.UpdateNote)
	rg.POST("/notes/:id/pin", h.TogglePinNote)
	rg.DELETE("/notes/:id", h.DeleteNote)
	rg.POST("/notes/reorder", h.ReorderNotes)

	rg.GET("/entities", h.ListEntities)
	rg.POST("/entities", h.CreateEntity)
	rg.PATCH("/entities/:id", h.UpdateEntity)
	rg.DELETE("/entities/:id", h.DeleteEntity)

	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
}

// Login handles the login form: unknown email is surfaced as a distinct
// signal from a wrong password (the client offers a signup link on it).
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	span.SetAttributes(attribute.Bool("request.valid", true))

	user, err := h.auth.Login(ctx, req)
	if err != nil {
		span.RecordError(err)

		switch {
		case errors.Is(err, logicv1.ErrUserNotFound):
			middleware.RecordAuthOutcome("login", "user_not_found")
			logger.Warn().Msg("Login attempt for unknown email")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
		case errors.Is(err, logicv1.ErrInvalidCredentials):
			middleware.RecordAuthOutcome("login", "invalid_credentials")
			logger.Warn().Msg("Login attempt with wrong password")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		default:
			middleware.RecordAuthOutcome("login", "error")
			logger.Error().Err(err).Msg("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}

	if err := h.sessions.Issue(c, user.ID); err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Session issuance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	middleware.RecordAuthOutcome("login", "success")
	logger.Info().Str("user_id", user.ID).Msg("Login successful")
	c.JSON(http.StatusOK, domain.AuthResponse{User: user, RedirectTo: middleware.HomeRoute})
}

// Signup handles account creation. Validation failures come back as a
// per-field error map; a duplicate email is a conflict on the email field.
func (h *Handler) Signup(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	user, err := h.auth.Signup(ctx, req)
	if err != nil {
		span.RecordError(err)

		var ve *logicv1.ValidationError
		switch {
		case errors.As(err, &ve):
			middleware.RecordAuthOutcome("signup", "validation_failed")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
		case errors.Is(err, logicv1.ErrUserExists):
			middleware.RecordAuthOutcome("signup", "email_exists")
			logger.Warn().Msg("Signup with existing email")
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{
				"email": []string{"Email already exists."},
			}})
		default:
			middleware.RecordAuthOutcome("signup", "error")
			logger.Error().Err(err).Msg("Signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}

	if err := h.sessions.Issue(c, user.ID); err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Session issuance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	middleware.RecordAuthOutcome("signup", "success")
	logger.Info().Str("user_id", user.ID).Msg("Signup successful")
	c.JSON(http.StatusCreated, domain.AuthResponse{User: user, RedirectTo: middleware.HomeRoute})
}

// Logout clears the session cookie unconditionally. The token itself stays
// valid until expiry; revocation is the client discarding it.
func (h *Handler) Logout(c *gin.Context) {
	_, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	h.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"redirectTo": middleware.LoginRoute})
}

// GetMe is the identity probe: the current session subject, or 401 with a
// null identity.
func (h *Handler) GetMe(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	sess := h.sessions.Verify(c)
	if sess == nil {
		span.SetAttributes(attribute.Bool("session.valid", false))
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}

	user, err := h.auth.GetUser(ctx, sess.UserID)
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, logicv1.ErrUserNotFound) {
			// Valid token for a deleted account.
			c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
			return
		}
		logger.Error().Err(err).Msg("Identity lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	span.SetAttributes(attribute.String("user.id", user.ID), attribute.Bool("session.valid", true))
	c.JSON(http.StatusOK, user)
}

// currentSession returns the verified session or writes a 401 and returns
// nil. Handlers behind the gate still re-verify: the check is stateless
// and cheap, and it keeps every handler safe when mounted without the gate.
func (h *Handler) currentSession(c *gin.Context) *session.Session {
	sess := h.sessions.Verify(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil, "error": "authentication required"})
	}
	return sess
}

// respondError maps Logic-layer errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	logger := zerolog.Ctx(c.Request.Context())

	var ve *logicv1.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
	case errors.Is(err, logicv1.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, logicv1.ErrUserNotFound):
		// Valid session token for an account that no longer exists.
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
	default:
		logger.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
