// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error bodies always carry a single "error" message field; success bodies
// are the resource itself (or {"success": true} for bare acknowledgements).

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func AckResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	ErrorResponse(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

// InternalErrorResponse hides the failure detail from clients; the cause
// is logged server-side only.
func InternalErrorResponse(c *gin.Context, err error) {
	if err != nil {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	message := "Validation failed"
	if len(errors) > 0 {
		message = errors[0].Message
	}
	ErrorResponse(c, http.StatusBadRequest, message)
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok && userIDStr != "" {
			return userIDStr, true
		}
	}
	return "", false
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("user_role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
