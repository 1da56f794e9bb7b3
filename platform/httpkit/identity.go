package httpkit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserIDKey is the gin context key the auth middleware populates.
const ContextUserIDKey = "userID"

// SetUserID stores the authenticated user's ID on the request context.
func SetUserID(c *gin.Context, userID uuid.UUID) {
	c.Set(ContextUserIDKey, userID)
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(ContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
