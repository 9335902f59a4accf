package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

// ListNotes returns the caller's notes in display order.
func (h *Handler) ListNotes(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	notes, err := h.notes.List(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// CreateNote appends a new note to the caller's board.
func (h *Handler) CreateNote(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req domain.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	note, err := h.notes.Create(c.Request.Context(), sess.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// UpdateNote applies a partial edit to one of the caller's notes.
func (h *Handler) UpdateNote(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req domain.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	note, err := h.notes.Update(c.Request.Context(), sess.UserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// TogglePinNote flips the pinned flag on one of the caller's notes.
func (h *Handler) TogglePinNote(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	note, err := h.notes.TogglePin(c.Request.Context(), sess.UserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote removes one of the caller's notes.
func (h *Handler) DeleteNote(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), sess.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderNotes persists a drag-and-drop reorder of the caller's board.
func (h *Handler) ReorderNotes(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var items []domain.OrderUpdate
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	if err := h.notes.Reorder(c.Request.Context(), sess.UserID, items); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
