package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers group read routes. Every route needs an
// authenticated user resolved to a caller.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, callerMiddleware gin.HandlerFunc) {
	group := g.Group("/groups")

	// === Authenticated Routes ===
	group.Use(authMiddleware, callerMiddleware)
	{
		group.GET("", h.List)              // List groups in hierarchy
		group.GET("/template", h.Template) // New-group template
		group.GET("/lookup", h.Lookup)     // Group lookup by office
		group.GET("/:id", h.Get)           // Get group details
	}
}
