package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/chat"
	"github.com/SharanSapkota/arena-server/internal/comment"
	"github.com/SharanSapkota/arena-server/internal/follower"
	"github.com/SharanSapkota/arena-server/internal/guest"
	"github.com/SharanSapkota/arena-server/internal/invite"
	"github.com/SharanSapkota/arena-server/internal/payment"
	"github.com/SharanSapkota/arena-server/internal/user"
	"github.com/SharanSapkota/arena-server/internal/verification"
	"github.com/SharanSapkota/arena-server/internal/view"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&arena.Arena{}, &arena.ArenaParticipant{},
		&invite.ArenaInvite{},
		&chat.Chat{}, &chat.ChatLike{},
		&comment.ChatComment{}, &comment.ArenaComment{},
		&follower.Follower{},
		&guest.Guest{},
		&view.ArenaView{},
		&verification.UserVerification{},
		&payment.PaymentMethod{}, &payment.Payment{},
	))

	cfg := &config.Config{}
	cfg.App.ClientURL = "http://localhost:3000"
	cfg.JWT.AccessTokenSecret = "router-test-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 60
	cfg.JWT.RefreshTokenSecret = "router-test-refresh"
	cfg.JWT.RefreshTokenExpiryDays = 7

	return SetupRoutes(db, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"username":   username,
		"email":      fmt.Sprintf("%s@example.com", username),
		"first_name": "Test",
		"last_name":  "User",
		"password":   "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestArenaLifecycle(t *testing.T) {
	r := setupServer(t)

	creator := registerUser(t, r, "creator")
	other := registerUser(t, r, "other")

	w := doJSON(t, r, http.MethodPost, "/api/arenas", creator, gin.H{
		"title":       "Evening showdown",
		"description": "Bring arguments",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID        uint `json:"id"`
		CreatorID uint `json:"creator_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	// First registered user in a fresh database.
	assert.Equal(t, uint(1), created.CreatorID)

	// Public read works without a token.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/arenas/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// A different user cannot edit.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/arenas/%d", created.ID), other, gin.H{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized to update this arena")

	// The creator can.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/arenas/%d", created.ID), creator, gin.H{
		"title": "Evening showdown, round two",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/arenas", "", gin.H{"title": "x", "description": "y"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuestSessionIsPublic(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/guests", "", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var g struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	require.NotEmpty(t, g.SessionID)

	w = doJSON(t, r, http.MethodGet, "/api/guests/session/"+g.SessionID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNestedArenaChats(t *testing.T) {
	r := setupServer(t)

	creator := registerUser(t, r, "chatter")

	w := doJSON(t, r, http.MethodPost, "/api/arenas", creator, gin.H{
		"title":       "Chatty arena",
		"description": "talk here",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/arenas/%d/chats", created.ID), creator, gin.H{
		"content": "first!",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Reading the thread needs no token.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/arenas/%d/chats", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "first!")
}
