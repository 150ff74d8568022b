package follower

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/user"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

func setupTestService(t *testing.T) (*FollowerService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &Follower{}))

	for _, name := range []string{"alice", "bob"} {
		require.NoError(t, db.Create(&user.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}).Error)
	}

	return NewFollowerService(NewFollowerRepository(db), user.NewUserRepository(db)), db
}

func TestFollowAndUnfollow(t *testing.T) {
	service, _ := setupTestService(t)

	f, err := service.Follow(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), f.FollowerID)
	assert.Equal(t, uint(2), f.FollowingID)

	followers, err := service.GetFollowers(2)
	require.NoError(t, err)
	assert.Len(t, followers, 1)

	require.NoError(t, service.Unfollow(1, 2))

	followers, err = service.GetFollowers(2)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestFollowSelf(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.Follow(1, 1)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.Code)
}

func TestFollowTwice(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.Follow(1, 2)
	require.NoError(t, err)

	_, err = service.Follow(1, 2)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, ae.Code)
	assert.Equal(t, "Already following this user", ae.Message)
}

func TestFollowUnknownUser(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.Follow(1, 999)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
}

func TestUnfollowWithoutFollow(t *testing.T) {
	service, _ := setupTestService(t)

	err := service.Unfollow(1, 2)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Code)
}
