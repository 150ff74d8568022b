package invite

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

func setupTestService(t *testing.T) (*InviteService, *arena.Arena) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&arena.Arena{}, &arena.ArenaParticipant{}, &ArenaInvite{}))

	arenaRepo := arena.NewArenaRepository(db)
	a, err := arena.NewArenaService(arenaRepo).CreateArena(1, arena.CreateArenaRequest{Title: "Invite target", Description: "test"})
	require.NoError(t, err)

	return NewInviteService(NewInviteRepository(db), arenaRepo), a
}

func TestCreateInvite(t *testing.T) {
	service, a := setupTestService(t)

	inv, err := service.CreateInvite(a.ID, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, a.ID, inv.ArenaID)
	assert.Equal(t, uint(5), inv.UserID)
}

func TestCreateInviteDuplicate(t *testing.T) {
	service, a := setupTestService(t)

	_, err := service.CreateInvite(a.ID, 1, 5)
	require.NoError(t, err)

	_, err = service.CreateInvite(a.ID, 1, 5)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, ae.Code)
	assert.Equal(t, "User already invited to this arena", ae.Message)
}

func TestCreateInviteByNonCreator(t *testing.T) {
	service, a := setupTestService(t)

	_, err := service.CreateInvite(a.ID, 2, 5)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)
}

func TestRemoveInviteByArenaAndUser(t *testing.T) {
	service, a := setupTestService(t)

	_, err := service.CreateInvite(a.ID, 1, 5)
	require.NoError(t, err)

	require.NoError(t, service.RemoveInviteByArenaAndUser(a.ID, 5, 1))

	err = service.RemoveInviteByArenaAndUser(a.ID, 5, 1)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
	assert.Equal(t, "Invite not found", ae.Message)
}
