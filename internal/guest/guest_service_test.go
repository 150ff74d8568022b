package guest

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

func setupTestService(t *testing.T) *GuestService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Guest{}))
	return NewGuestService(NewGuestRepository(db))
}

func TestCreateGuestGeneratesSession(t *testing.T) {
	service := setupTestService(t)

	g, err := service.CreateGuest("10.0.0.1", "curl/8.0")
	require.NoError(t, err)

	_, err = uuid.Parse(g.SessionID)
	assert.NoError(t, err)

	got, err := service.GetGuestBySession(g.SessionID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
}

func TestGetGuestNotFound(t *testing.T) {
	service := setupTestService(t)

	_, err := service.GetGuest(999)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
	assert.Equal(t, "Guest not found", ae.Message)
}

func TestDeleteGuest(t *testing.T) {
	service := setupTestService(t)

	g, err := service.CreateGuest("10.0.0.1", "curl/8.0")
	require.NoError(t, err)

	require.NoError(t, service.DeleteGuest(g.ID))

	_, err = service.GetGuest(g.ID)
	require.Error(t, err)
}
