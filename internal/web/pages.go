// Package web holds HTTP-surface helpers shared across API versions.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page returns a minimal handler for a dashboard page route. The UI itself
// is a separate frontend; these routes exist so the request gate's redirect
// semantics cover page navigation end to end.
func Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}
