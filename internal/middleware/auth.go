package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/token"
)

// AuthMiddleware gates a route group behind a bearer JWT. The token must be
// valid and the referenced user must still exist.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "You are not logged in"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		var count int64
		if err := db.Table("users").Where("id = ? AND deleted_at IS NULL", claims.UserID).Count(&count).Error; err != nil || count == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User no longer exists"})
			return
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth attaches the user id when a valid bearer token is present but
// never rejects the request. Used on routes open to guests.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) == 2 && strings.ToLower(bearerToken[0]) == "bearer" {
			if claims, err := token.ValidateJWT(bearerToken[1], jwtSecret); err == nil {
				c.Set(common.ContextUserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}
