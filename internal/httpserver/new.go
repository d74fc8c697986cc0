package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	caseHTTP "school-case-management/internal/casefile/delivery/http"
	deadlineHTTP "school-case-management/internal/deadline/delivery/http"
	"school-case-management/internal/middleware"
	"school-case-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	deps        []Dependency

	// Domains
	deadlineHandler deadlineHTTP.Handler
	caseHandler     caseHTTP.Handler
}

// Dependency is an upstream the API needs in order to serve case traffic.
type Dependency interface {
	Name() string
	Ready() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Upstreams checked by /ready
	Dependencies []Dependency

	// Domains
	DeadlineHandler deadlineHTTP.Handler
	CaseHandler     caseHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		deps:            cfg.Dependencies,
		deadlineHandler: cfg.DeadlineHandler,
		caseHandler:     cfg.CaseHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.deadlineHandler == nil {
		return errors.New("deadline handler is required")
	}
	return nil
}
