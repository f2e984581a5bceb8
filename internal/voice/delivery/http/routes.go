package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/middleware"
)

// RegisterRoutes maps the voice endpoints onto the tasks group.
// Audio endpoints call a paid upstream service and are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", h.Parse)
	rg.POST("/transcribe", mw.RateLimit(), h.Transcribe)
	rg.POST("/transcribe-parse", mw.RateLimit(), h.TranscribeAndParse)
}
