//go:build echo

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Echo returns an Echo handler for POST /estimate. Build with
// -tags=echo to enable.
//
//	e.POST("/estimate", server.Echo(server.DefaultConfig()))
func Echo(cfg Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req estimateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		resp := estimate(cfg, req.Password, req.UserInputs)
		status := http.StatusOK
		if !resp.Passed {
			status = http.StatusUnprocessableEntity
		}
		return c.JSON(status, resp)
	}
}
