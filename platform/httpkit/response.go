// Package httpkit provides shared HTTP utilities: response helpers, error
// mapping and identity extraction.
package httpkit

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadgenie_backend/platform/apperr"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// FromError maps a domain error to an HTTP response. Typed apperr errors
// choose their own status; everything else is an internal error with the
// message suppressed.
func FromError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		Error(c, appErr.HTTPStatus(), appErr.Message, appErr.Details)
		return
	}
	Error(c, http.StatusInternalServerError, "internal error", nil)
}
