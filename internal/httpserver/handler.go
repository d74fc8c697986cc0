package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	caseHTTP "school-case-management/internal/casefile/delivery/http"
	deadlineHTTP "school-case-management/internal/deadline/delivery/http"
	"school-case-management/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID(), srv.mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	deadlineHTTP.RegisterRoutes(api, srv.deadlineHandler)
	srv.l.Infof(ctx, "Deadline routes registered at /api/v1/deadlines")

	if srv.caseHandler != nil {
		caseHTTP.RegisterRoutes(api, srv.caseHandler)
		srv.l.Infof(ctx, "Case routes registered at /api/v1/cases")
	} else {
		srv.l.Infof(ctx, "Case handler not configured, skipping case routes")
	}
}
