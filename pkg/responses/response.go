package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// ErrorResponse is the standard error JSON body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is used for operations that only acknowledge success.
type MessageResponse struct {
	Message string `json:"message"`
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Message: message})
}

// FromError maps a service error to its HTTP response. AppErrors keep their
// declared status code; anything else becomes a flat 500.
func FromError(c *gin.Context, err error) {
	if ae, ok := apperr.From(err); ok {
		SendError(c, ae.Code, ae.Message)
		return
	}
	SendError(c, http.StatusInternalServerError, "Internal server error")
}

// SendMessage sends a success acknowledgment with no resource body.
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found")
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authenticated"
	}
	SendError(c, http.StatusUnauthorized, message)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context) {
	SendError(c, http.StatusInternalServerError, "Internal server error")
}
