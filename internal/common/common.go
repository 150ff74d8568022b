package common

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

const (
	// Context keys
	ContextUserKey   = "currentUser" // Key to store the user object in context
	ContextUserIDKey = "userID"      // Key to store the user ID in context
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return 0, errors.New("user ID in context is not of type uint")
	}
	return userID, nil
}

// Owned is implemented by records that belong to a single user. The owner is
// the sole authority for mutating the record.
type Owned interface {
	OwnerID() uint
}

// EnsureOwner fails with a forbidden error unless actorID owns the resource.
func EnsureOwner(res Owned, actorID uint, denied string) error {
	if res.OwnerID() != actorID {
		return apperr.Forbidden(denied)
	}
	return nil
}
