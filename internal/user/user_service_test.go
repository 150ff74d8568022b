package user

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
	"github.com/SharanSapkota/arena-server/pkg/token"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &RefreshToken{}))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = "test-access-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 60
	cfg.JWT.RefreshTokenSecret = "test-refresh-secret"
	cfg.JWT.RefreshTokenExpiryDays = 7
	return cfg
}

func registerReq() RegisterRequest {
	return RegisterRequest{
		Username:  "sharan",
		Email:     "sharan@example.com",
		FirstName: "Sharan",
		LastName:  "Sapkota",
		Password:  "supersecret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	service := NewUserService(NewUserRepository(setupTestDB(t)), testConfig())

	resp, err := service.Register(registerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "sharan", resp.User.Username)

	claims, err := token.ValidateJWT(resp.Token, "test-access-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	login, err := service.Login(LoginRequest{Email: "sharan@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewUserService(NewUserRepository(setupTestDB(t)), testConfig())

	_, err := service.Register(registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Username = "someoneelse"
	_, err = service.Register(dup)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, ae.Code)
	assert.Equal(t, "Email already registered", ae.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewUserService(NewUserRepository(setupTestDB(t)), testConfig())

	_, err := service.Register(registerReq())
	require.NoError(t, err)

	resp, err := service.Login(LoginRequest{Email: "sharan@example.com", Password: "wrongpassword"})
	require.Error(t, err)
	assert.Nil(t, resp)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ae.Code)
	assert.Equal(t, "Invalid credentials", ae.Message)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	service := NewUserService(NewUserRepository(setupTestDB(t)), testConfig())

	resp, err := service.Register(registerReq())
	require.NoError(t, err)

	access, err := service.Refresh(resp.RefreshToken)
	require.NoError(t, err)
	claims, err := token.ValidateJWT(access, "test-access-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}
