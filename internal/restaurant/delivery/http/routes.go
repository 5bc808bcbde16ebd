package http

import (
	"github.com/gin-gonic/gin"

	"tablebooker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.RateLimit(), h.List)
}
