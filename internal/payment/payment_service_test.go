package payment

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/models"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// fakeGateway stands in for Stripe. Every created intent gets a fixed id and
// reports the configured status on retrieval.
type fakeGateway struct {
	status  string
	created int
}

func (f *fakeGateway) CreateIntent(amount int64, metadata map[string]string) (*Intent, error) {
	f.created++
	return &Intent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret", Status: "requires_payment_method"}, nil
}

func (f *fakeGateway) RetrieveIntent(intentID string) (*Intent, error) {
	return &Intent{ID: intentID, ClientSecret: intentID + "_secret", Status: f.status}, nil
}

func setupTestService(t *testing.T, gateway PaymentGateway) (*PaymentService, *gorm.DB, *arena.Arena) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&arena.Arena{}, &arena.ArenaParticipant{}, &PaymentMethod{}, &Payment{}))

	arenaRepo := arena.NewArenaRepository(db)
	a, err := arena.NewArenaService(arenaRepo).CreateArena(1, arena.CreateArenaRequest{Title: "Paid arena", Description: "test", EntryFee: 10})
	require.NoError(t, err)

	return NewPaymentService(NewPaymentRepository(db), arenaRepo, gateway), db, a
}

func TestCreateIntentNoEntryFee(t *testing.T) {
	gateway := &fakeGateway{status: "succeeded"}
	service, db, _ := setupTestService(t, gateway)

	free, err := arena.NewArenaService(arena.NewArenaRepository(db)).CreateArena(1, arena.CreateArenaRequest{Title: "Free arena", Description: "test"})
	require.NoError(t, err)

	_, err = service.CreateIntent(2, CreateIntentRequest{ArenaID: free.ID})
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.Code)
	assert.Equal(t, "This arena has no entry fee", ae.Message)
	assert.Zero(t, gateway.created)
}

func TestCreateIntentRecordsPendingPayment(t *testing.T) {
	gateway := &fakeGateway{status: "succeeded"}
	service, _, a := setupTestService(t, gateway)

	resp, err := service.CreateIntent(2, CreateIntentRequest{ArenaID: a.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ClientSecret)
	assert.Equal(t, int64(1000), resp.Amount)

	p, err := service.GetPayment(resp.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, uint(2), p.PayerID)
	assert.Equal(t, a.CreatorID, p.ReceiverID)
	assert.Equal(t, "pi_test_123", p.IntentID)
}

func TestVerifyIntentEnrollsPayer(t *testing.T) {
	gateway := &fakeGateway{status: "succeeded"}
	service, db, a := setupTestService(t, gateway)

	resp, err := service.CreateIntent(2, CreateIntentRequest{ArenaID: a.ID})
	require.NoError(t, err)

	p, err := service.VerifyIntent(2, resp.IntentID)
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, p.Status)
	require.NotNil(t, p.PaidAt)

	var participants int64
	require.NoError(t, db.Model(&arena.ArenaParticipant{}).
		Where("arena_id = ? AND user_id = ?", a.ID, 2).Count(&participants).Error)
	assert.Equal(t, int64(1), participants)

	// Verifying again is a no-op, not a second enrollment.
	p, err = service.VerifyIntent(2, resp.IntentID)
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, p.Status)

	require.NoError(t, db.Model(&arena.ArenaParticipant{}).
		Where("arena_id = ? AND user_id = ?", a.ID, 2).Count(&participants).Error)
	assert.Equal(t, int64(1), participants)
}

func TestVerifyIntentNotSucceeded(t *testing.T) {
	gateway := &fakeGateway{status: "requires_payment_method"}
	service, _, a := setupTestService(t, gateway)

	resp, err := service.CreateIntent(2, CreateIntentRequest{ArenaID: a.ID})
	require.NoError(t, err)

	_, err = service.VerifyIntent(2, resp.IntentID)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.Code)
	assert.Equal(t, "Payment not successful", ae.Message)

	p, err := service.GetPayment(resp.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status)
}

func TestVerifyIntentWrongPayer(t *testing.T) {
	gateway := &fakeGateway{status: "succeeded"}
	service, _, a := setupTestService(t, gateway)

	resp, err := service.CreateIntent(2, CreateIntentRequest{ArenaID: a.ID})
	require.NoError(t, err)

	_, err = service.VerifyIntent(3, resp.IntentID)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)
}

func TestDeleteMethodByNonOwner(t *testing.T) {
	service, _, _ := setupTestService(t, &fakeGateway{status: "succeeded"})

	m, err := service.CreateMethod(2, MethodCreditCard, models.JSONMap{"last4": "4242"})
	require.NoError(t, err)

	err = service.DeleteMethod(m.ID, 3)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, ae.Code)

	require.NoError(t, service.DeleteMethod(m.ID, 2))
}
