package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	deadlines := rg.Group("/deadlines")
	{
		deadlines.GET("/compute", h.Compute)
		deadlines.GET("/classify", h.Classify)
	}
}
