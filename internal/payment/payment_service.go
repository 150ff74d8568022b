package payment

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/internal/models"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// PaymentService manages payment methods, payment records and the gateway
// intent lifecycle for arena entry fees.
type PaymentService struct {
	repo      PaymentRepository
	arenaRepo arena.ArenaRepository
	gateway   PaymentGateway
}

func NewPaymentService(repo PaymentRepository, arenaRepo arena.ArenaRepository, gateway PaymentGateway) *PaymentService {
	return &PaymentService{repo: repo, arenaRepo: arenaRepo, gateway: gateway}
}

// --- Payment methods ---

func (s *PaymentService) CreateMethod(userID uint, methodType string, details models.JSONMap) (*PaymentMethod, error) {
	m := &PaymentMethod{UserID: userID, MethodType: methodType, Details: details}
	if err := s.repo.CreateMethod(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *PaymentService) GetUserMethods(userID uint) ([]PaymentMethod, error) {
	return s.repo.GetMethodsByUserID(userID)
}

func (s *PaymentService) DeleteMethod(id, actorID uint) error {
	m, err := s.repo.GetMethodByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return apperr.NotFound("Payment method not found")
	}
	if err := common.EnsureOwner(m, actorID, "Not authorized to delete this payment method"); err != nil {
		return err
	}
	return s.repo.DeleteMethod(id)
}

// --- Payment records ---

func (s *PaymentService) CreatePayment(payerID uint, req CreatePaymentRequest) (*Payment, error) {
	a, err := s.arenaRepo.GetArenaByID(req.ArenaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Arena not found")
	}

	if req.MethodID != nil {
		m, err := s.repo.GetMethodByID(*req.MethodID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, apperr.NotFound("Payment method not found")
		}
		if m.UserID != payerID {
			return nil, apperr.Forbidden("Payment method does not belong to you")
		}
	}

	p := &Payment{
		PayerID:    payerID,
		ReceiverID: req.ReceiverID,
		ArenaID:    req.ArenaID,
		MethodID:   req.MethodID,
		Amount:     req.Amount,
		Status:     StatusPending,
	}
	if err := s.repo.CreatePayment(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) GetPayment(id uint) (*Payment, error) {
	p, err := s.repo.GetPaymentByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Payment not found")
	}
	return p, nil
}

func (s *PaymentService) GetPayerPayments(payerID uint) ([]Payment, error) {
	return s.repo.GetPaymentsByPayerID(payerID)
}

func (s *PaymentService) GetReceiverPayments(receiverID uint) ([]Payment, error) {
	return s.repo.GetPaymentsByReceiverID(receiverID)
}

// --- Gateway flow ---

// CreateIntent opens a gateway intent for an arena's entry fee and records a
// pending payment tied to it.
func (s *PaymentService) CreateIntent(payerID uint, req CreateIntentRequest) (*IntentResponse, error) {
	a, err := s.arenaRepo.GetArenaByID(req.ArenaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Arena not found")
	}
	if a.EntryFee <= 0 {
		return nil, apperr.BadRequest("This arena has no entry fee")
	}

	amount := a.EntryFee * 100
	intent, err := s.gateway.CreateIntent(amount, map[string]string{
		"arenaId": strconv.FormatUint(uint64(a.ID), 10),
		"userId":  strconv.FormatUint(uint64(payerID), 10),
	})
	if err != nil {
		return nil, err
	}

	p := &Payment{
		PayerID:    payerID,
		ReceiverID: a.CreatorID,
		ArenaID:    a.ID,
		MethodID:   req.MethodID,
		Amount:     amount,
		Status:     StatusPending,
		IntentID:   intent.ID,
	}
	if err := s.repo.CreatePayment(p); err != nil {
		return nil, err
	}

	return &IntentResponse{
		PaymentID:    p.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
	}, nil
}

// VerifyIntent confirms a gateway intent, marks the payment succeeded and
// enrolls the payer in the arena. Calling it again for an already-settled
// payment is a no-op.
func (s *PaymentService) VerifyIntent(payerID uint, intentID string) (*Payment, error) {
	p, err := s.repo.GetPaymentByIntentID(intentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Payment not found")
	}
	if p.PayerID != payerID {
		return nil, apperr.Forbidden("Not authorized to verify this payment")
	}
	if p.Status == StatusSucceeded {
		return p, nil
	}

	intent, err := s.gateway.RetrieveIntent(intentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != "succeeded" {
		return nil, apperr.BadRequest("Payment not successful")
	}

	now := time.Now()
	err = s.repo.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Payment{}).Where("id = ?", p.ID).
			Updates(map[string]interface{}{"status": StatusSucceeded, "paid_at": now}).Error; err != nil {
			return err
		}
		participant := arena.ArenaParticipant{ArenaID: p.ArenaID, UserID: p.PayerID}
		return tx.Where("arena_id = ? AND user_id = ?", p.ArenaID, p.PayerID).
			FirstOrCreate(&participant).Error
	})
	if err != nil {
		return nil, err
	}

	p.Status = StatusSucceeded
	p.PaidAt = &now
	return p, nil
}
