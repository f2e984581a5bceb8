package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)

	rg.GET("/search/query", h.Search)
	rg.POST("/search/query", h.Search)

	get := rg.Group("/get")
	{
		get.GET("/upcoming", h.Upcoming)
		get.GET("/overdue", h.Overdue)
		get.GET("/stats", h.Stats)
		get.GET("/priority/:priority", h.ByPriority)
	}
}
