package utils

import (
	"github.com/gin-gonic/gin"
)

// Success envelope: {message, data}
type JSONResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Message: message,
		Data:    data,
	})
}

// RespondError sends {error: "..."} with the given status code.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}

// RespondFieldErrors sends the aggregated per-field validation map as
// {error: {field: message}} with HTTP 400.
func RespondFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(400, gin.H{"error": fields})
}

// IsEmptyOrNull reports whether a form value counts as missing.
func IsEmptyOrNull(v string) bool {
	return v == ""
}
