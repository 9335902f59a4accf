package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

// GetProfile returns the caller's full profile.
func (h *Handler) GetProfile(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial profile edit for the caller.
func (h *Handler) UpdateProfile(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), sess.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
