package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "school-case-management/pkg/errors"
	"school-case-management/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "School case deadlines API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "school-case-management"

	errCodeNotReady = 503
)

// dependencyStatus maps each upstream to "ok" or its readiness error.
// ready is false if any upstream fails.
func (srv HTTPServer) dependencyStatus() (statuses map[string]string, ready bool) {
	statuses = make(map[string]string, len(srv.deps))
	ready = true
	for _, dep := range srv.deps {
		if err := dep.Ready(); err != nil {
			statuses[dep.Name()] = err.Error()
			ready = false
			continue
		}
		statuses[dep.Name()] = "ok"
	}
	return statuses, ready
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports service identity and the state of each upstream. Always 200.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	deps, _ := srv.dependencyStatus()
	response.OK(c, gin.H{
		"status":       "healthy",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// readyCheck reports not ready while the school backend breaker is open,
// so load balancers stop routing case traffic here.
// @Summary Readiness Check
// @Description Check if the API and its upstreams can serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "An upstream is unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	deps, ready := srv.dependencyStatus()
	if !ready {
		srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: not ready: %v", deps)
		response.Error(c, pkgErrors.NewHTTPErrorWithCode(http.StatusServiceUnavailable, errCodeNotReady, "not ready"), map[string]interface{}{
			"status":       "not_ready",
			"service":      ServiceName,
			"dependencies": deps,
		})
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// liveCheck only reports that the process answers; upstreams are ignored.
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
