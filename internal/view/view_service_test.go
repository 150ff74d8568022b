package view

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

func setupTestService(t *testing.T) (*ViewService, *arena.Arena) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&arena.Arena{}, &arena.ArenaParticipant{}, &ArenaView{}))

	arenaRepo := arena.NewArenaRepository(db)
	a, err := arena.NewArenaService(arenaRepo).CreateArena(1, arena.CreateArenaRequest{Title: "Viewed arena", Description: "test"})
	require.NoError(t, err)

	return NewViewService(NewViewRepository(db), arenaRepo), a
}

func TestRecordUserAndGuestViews(t *testing.T) {
	service, a := setupTestService(t)

	viewerID := uint(2)
	v, err := service.RecordView(a.ID, &viewerID, nil, "10.0.0.1", "curl/8.0")
	require.NoError(t, err)
	require.NotNil(t, v.ViewerID)
	assert.Equal(t, viewerID, *v.ViewerID)

	guestID := uint(7)
	_, err = service.RecordView(a.ID, nil, &guestID, "10.0.0.2", "curl/8.0")
	require.NoError(t, err)

	count, err := service.GetViewCount(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRecordViewUnknownArena(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.RecordView(999, nil, nil, "10.0.0.1", "curl/8.0")
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
	assert.Equal(t, "Arena not found", ae.Message)
}

func TestDeleteViewByNonViewer(t *testing.T) {
	service, a := setupTestService(t)

	viewerID := uint(2)
	v, err := service.RecordView(a.ID, &viewerID, nil, "10.0.0.1", "curl/8.0")
	require.NoError(t, err)

	err = service.DeleteView(v.ID, 3)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)
	assert.Equal(t, "Not authorized to remove this view", ae.Message)

	require.NoError(t, service.DeleteView(v.ID, viewerID))
}

func TestDeleteGuestViewByUser(t *testing.T) {
	service, a := setupTestService(t)

	guestID := uint(7)
	v, err := service.RecordView(a.ID, nil, &guestID, "10.0.0.2", "curl/8.0")
	require.NoError(t, err)

	// Guest views have no viewer, nobody can remove them via the API.
	err = service.DeleteView(v.ID, 2)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)
}
