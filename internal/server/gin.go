//go:build gin

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Gin returns a Gin handler for POST /estimate. Build with -tags=gin to
// enable.
//
//	r.POST("/estimate", server.Gin(server.DefaultConfig()))
func Gin(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req estimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		resp := estimate(cfg, req.Password, req.UserInputs)
		status := http.StatusOK
		if !resp.Passed {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, resp)
	}
}
