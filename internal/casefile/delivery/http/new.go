package http

import (
	"github.com/gin-gonic/gin"

	"school-case-management/internal/casefile"
	"school-case-management/pkg/log"
)

// Handler is the public interface for the casefile HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Summary(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc casefile.UseCase
}

// New creates a new HTTP handler for the casefile domain.
func New(l log.Logger, uc casefile.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
