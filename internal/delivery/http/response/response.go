package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessBody is the fixed success payload of the intake endpoints.
type SuccessBody struct {
	Success bool `json:"success"`
}

// ErrorBody carries the client-facing error message.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends the intake success body: {"success": true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// Error sends {"error": message} with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
