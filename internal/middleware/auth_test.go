package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/internal/middleware"
	"github.com/SharanSapkota/arena-server/internal/user"
	"github.com/SharanSapkota/arena-server/pkg/token"
)

const testSecret = "middleware-test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}))

	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testSecret, db), func(c *gin.Context) {
		userID, err := common.GetUserIDFromContext(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r, db
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "You are not logged in")
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	r, _ := setupRouter(t)

	// Token for a user id that was never created.
	jwt, err := token.GenerateJWT(42, "ghost@example.com", testSecret, 60)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwt)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User no longer exists")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r, db := setupRouter(t)

	u := &user.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)

	jwt, err := token.GenerateJWT(u.ID, u.Email, testSecret, 60)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwt)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
