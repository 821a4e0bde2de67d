package handlers

import (
	"crow/internal/middleware"
	"crow/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the logged-in user from the context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// CurrentUserID returns the logged-in user's id, or 0 for anonymous callers.
func CurrentUserID(c *gin.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// RespondError writes the standard error envelope.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}
