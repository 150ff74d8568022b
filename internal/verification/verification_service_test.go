package verification

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

func setupTestService(t *testing.T) *VerificationService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserVerification{}))
	return NewVerificationService(NewVerificationRepository(db))
}

func TestCreateVerification(t *testing.T) {
	service := setupTestService(t)

	v, err := service.CreateVerification(1, ProviderTwitter)
	require.NoError(t, err)
	assert.Equal(t, ProviderTwitter, v.Provider)
	assert.False(t, v.VerifiedAt.IsZero())
}

func TestCreateVerificationSameProviderTwice(t *testing.T) {
	service := setupTestService(t)

	_, err := service.CreateVerification(1, ProviderTwitter)
	require.NoError(t, err)

	_, err = service.CreateVerification(1, ProviderTwitter)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, ae.Code)
	assert.Equal(t, "Verification already exists for this provider", ae.Message)

	// A different provider is fine.
	_, err = service.CreateVerification(1, ProviderLinkedIn)
	require.NoError(t, err)

	verifications, err := service.GetUserVerifications(1)
	require.NoError(t, err)
	assert.Len(t, verifications, 2)
}

func TestDeleteVerificationByNonOwner(t *testing.T) {
	service := setupTestService(t)

	v, err := service.CreateVerification(1, ProviderTwitter)
	require.NoError(t, err)

	err = service.DeleteVerification(v.ID, 2)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)

	require.NoError(t, service.DeleteVerification(v.ID, 1))
}
