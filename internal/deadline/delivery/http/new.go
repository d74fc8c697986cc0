package http

import (
	"github.com/gin-gonic/gin"

	"school-case-management/internal/deadline"
	"school-case-management/pkg/log"
)

// Handler is the public interface for the deadline HTTP delivery layer.
type Handler interface {
	Compute(c *gin.Context)
	Classify(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc deadline.UseCase
}

// New creates a new HTTP handler for the deadline domain.
func New(l log.Logger, uc deadline.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
