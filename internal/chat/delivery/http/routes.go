package http

import (
	"github.com/gin-gonic/gin"

	"tablebooker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", mw.RateLimit(), h.SendMessage)
		chat.GET("/sessions/:id", h.GetSession)
	}
}
