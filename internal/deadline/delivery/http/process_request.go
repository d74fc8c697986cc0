package http

import "github.com/gin-gonic/gin"

// processComputeReq binds and validates the compute query parameters.
func (h *handler) processComputeReq(c *gin.Context) (computeReq, error) {
	var req computeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processClassifyReq binds the classify query parameters.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
