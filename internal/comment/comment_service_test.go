package comment

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/chat"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

type testEnv struct {
	service *CommentService
	arena   *arena.Arena
	chat    *chat.Chat
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&arena.Arena{}, &arena.ArenaParticipant{},
		&chat.Chat{}, &chat.ChatLike{},
		&ChatComment{}, &ArenaComment{},
	))

	arenaRepo := arena.NewArenaRepository(db)
	a, err := arena.NewArenaService(arenaRepo).CreateArena(1, arena.CreateArenaRequest{Title: "Commented arena", Description: "test"})
	require.NoError(t, err)

	chatRepo := chat.NewChatRepository(db)
	ch, err := chat.NewChatService(chatRepo, arenaRepo).CreateChat(a.ID, 2, "root message", chat.TypeText)
	require.NoError(t, err)

	return testEnv{
		service: NewCommentService(NewCommentRepository(db), chatRepo, arenaRepo),
		arena:   a,
		chat:    ch,
	}
}

func TestCreateComment(t *testing.T) {
	env := setupTestEnv(t)

	c, err := env.service.CreateComment(env.chat.ID, 3, "nice point")
	require.NoError(t, err)
	assert.Equal(t, env.chat.ID, c.ChatID)

	count, err := env.service.GetCommentCount(env.chat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateCommentUnknownChat(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.service.CreateComment(999, 3, "lost")
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
	assert.Equal(t, "Chat not found", ae.Message)
}

func TestUpdateCommentByNonAuthor(t *testing.T) {
	env := setupTestEnv(t)

	c, err := env.service.CreateComment(env.chat.ID, 3, "original")
	require.NoError(t, err)

	_, err = env.service.UpdateComment(c.ID, 4, "edited")
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)

	got, err := env.service.GetComment(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Content)
}

func TestArenaComments(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.service.CreateArenaComment(env.arena.ID, 3, "great arena")
	require.NoError(t, err)

	comments, err := env.service.GetArenaComments(env.arena.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	_, err = env.service.CreateArenaComment(999, 3, "nowhere")
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
}
