package arena

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Arena{}, &ArenaParticipant{}))
	return db
}

func TestCreateAndGetArena(t *testing.T) {
	service := NewArenaService(NewArenaRepository(setupTestDB(t)))

	created, err := service.CreateArena(1, CreateArenaRequest{Title: "Morning debate", EntryFee: 10})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.CreatorID)
	assert.Equal(t, "active", created.Status)

	got, err := service.GetArena(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning debate", got.Title)
}

func TestGetArenaNotFound(t *testing.T) {
	service := NewArenaService(NewArenaRepository(setupTestDB(t)))

	_, err := service.GetArena(999)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
	assert.Equal(t, "Arena not found", ae.Message)
}

func TestUpdateArenaByNonCreator(t *testing.T) {
	repo := NewArenaRepository(setupTestDB(t))
	service := NewArenaService(repo)

	created, err := service.CreateArena(1, CreateArenaRequest{Title: "Original title"})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = service.UpdateArena(created.ID, 2, UpdateArenaRequest{Title: &newTitle})
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)
	assert.Equal(t, "Not authorized to update this arena", ae.Message)

	// The arena must be untouched.
	got, err := service.GetArena(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original title", got.Title)
}

func TestDeleteArenaByCreator(t *testing.T) {
	service := NewArenaService(NewArenaRepository(setupTestDB(t)))

	created, err := service.CreateArena(1, CreateArenaRequest{Title: "Short lived"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteArena(created.ID, 1))

	_, err = service.GetArena(created.ID)
	require.Error(t, err)
}
