package chat

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

func setupTestService(t *testing.T) (*ChatService, *arena.Arena) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&arena.Arena{}, &arena.ArenaParticipant{}, &Chat{}, &ChatLike{}))

	arenaRepo := arena.NewArenaRepository(db)
	a, err := arena.NewArenaService(arenaRepo).CreateArena(1, arena.CreateArenaRequest{Title: "Chat room", Description: "test"})
	require.NoError(t, err)

	return NewChatService(NewChatRepository(db), arenaRepo), a
}

func TestCreateChatDefaultsToText(t *testing.T) {
	service, a := setupTestService(t)

	ch, err := service.CreateChat(a.ID, 2, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, TypeText, ch.Type)
}

func TestCreateChatUnknownArena(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.CreateChat(999, 2, "hello", TypeText)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
	assert.Equal(t, "Arena not found", ae.Message)
}

func TestUpdateChatByNonAuthor(t *testing.T) {
	service, a := setupTestService(t)

	ch, err := service.CreateChat(a.ID, 2, "original", TypeText)
	require.NoError(t, err)

	_, err = service.UpdateChat(ch.ID, 3, "edited")
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)

	got, err := service.GetChat(ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Content)
}

func TestLikeChatTwice(t *testing.T) {
	service, a := setupTestService(t)

	ch, err := service.CreateChat(a.ID, 2, "likeable", TypeText)
	require.NoError(t, err)

	_, err = service.LikeChat(ch.ID, 3)
	require.NoError(t, err)

	_, err = service.LikeChat(ch.ID, 3)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, ae.Code)
	assert.Equal(t, "Chat already liked", ae.Message)

	count, err := service.GetLikeCount(ch.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnlikeChatWithoutLike(t *testing.T) {
	service, a := setupTestService(t)

	ch, err := service.CreateChat(a.ID, 2, "unliked", TypeText)
	require.NoError(t, err)

	err = service.UnlikeChat(ch.ID, 3)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
}
