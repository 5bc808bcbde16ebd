package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"tablebooker/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From TableBooker API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "tablebooker"
)

const aiProbeTimeout = 2 * time.Second

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// aiStatus probes the language backend. The service stays healthy without
// it because replies degrade to canned responses.
// @Summary AI Status
// @Description Check whether the language backend is reachable
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Backend status"
// @Router /ai-status [get]
func (srv *HTTPServer) aiStatus(c *gin.Context) {
	if srv.ollama == nil {
		response.OK(c, gin.H{
			"status": "disabled",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), aiProbeTimeout)
	defer cancel()

	if err := srv.ollama.Healthy(ctx); err != nil {
		response.OK(c, gin.H{
			"status": "unreachable",
			"model":  srv.ollama.Model(),
			"error":  err.Error(),
		})
		return
	}

	response.OK(c, gin.H{
		"status": "healthy",
		"model":  srv.ollama.Model(),
	})
}
