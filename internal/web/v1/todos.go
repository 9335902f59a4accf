package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/secure-dash/internal/core/domain"
)

// ListTodos returns the caller's todo list in display order.
func (h *Handler) ListTodos(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	todos, err := h.todos.List(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// CreateTodo appends a new todo to the caller's list.
func (h *Handler) CreateTodo(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req domain.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), sess.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo applies a partial edit to one of the caller's todos.
func (h *Handler) UpdateTodo(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req domain.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), sess.UserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// ToggleTodo flips completion on one of the caller's todos.
func (h *Handler) ToggleTodo(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	todo, err := h.todos.Toggle(c.Request.Context(), sess.UserID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes one of the caller's todos.
func (h *Handler) DeleteTodo(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	if err := h.todos.Delete(c.Request.Context(), sess.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderTodos persists a drag-and-drop reorder of the caller's list.
func (h *Handler) ReorderTodos(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var items []domain.OrderUpdate
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_fields"})
		return
	}

	if err := h.todos.Reorder(c.Request.Context(), sess.UserID, items); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
