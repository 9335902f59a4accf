package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

// ListEntities returns all workspace entities.
func (h *Handler) ListEntities(c *gin.Context) {
	if h.currentSession(c) == nil {
		return
	}

	entities, err := h.entities.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entities)
}

// CreateEntity inserts a new workspace entity.
func (h *Handler) CreateEntity(c *gin.Context) {
	if h.currentSession(c) == nil {
		return
	}

	var req domain.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	entity, err := h.entities.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

// UpdateEntity applies a partial edit to an entity.
func (h *Handler) UpdateEntity(c *gin.Context) {
	if h.currentSession(c) == nil {
		return
	}

	var req domain.UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	entity, err := h.entities.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// DeleteEntity removes an entity.
func (h *Handler) DeleteEntity(c *gin.Context) {
	if h.currentSession(c) == nil {
		return
	}

	if err := h.entities.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
