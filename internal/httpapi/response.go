// Package httpapi exposes the solve pipeline over HTTP: POST /api/v1/solve,
// GET /api/v1/solve/:key and GET /health. Grounded on the teacher's
// module/analytics/goal_prioritization handler+service+fx shape, with
// shared.RespondWith* (deleted along with internal/shared) replaced by
// the slim helpers below.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"groupahpdss/internal/apperr"
)

// SuccessResponse is the envelope every 2xx JSON response uses.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope every non-2xx JSON response uses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// respondSuccess writes a 2xx envelope.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, SuccessResponse{Success: true, Message: message, Data: data})
}

// respondError writes a 4xx/5xx envelope directly.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// handleError translates an *apperr.Error into its documented HTTP
// status, and falls back to 500 for anything else.
func handleError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), ErrorResponse{Success: false, Code: string(appErr.Code), Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: err.Error()})
}
