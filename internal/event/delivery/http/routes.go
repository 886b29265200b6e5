package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.RateLimit(), h.Schedule)
		events.POST("/voice", mw.RateLimit(), h.ScheduleVoice)
		events.GET("/upcoming", h.ListUpcoming)
	}
}
