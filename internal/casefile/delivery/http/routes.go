package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	cases := rg.Group("/cases")
	{
		cases.GET("", h.List)
		cases.GET("/summary", h.Summary)
		cases.GET("/:id", h.Detail)
	}
}
