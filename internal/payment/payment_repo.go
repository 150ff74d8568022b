package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreateMethod(m *PaymentMethod) error
	GetMethodByID(id uint) (*PaymentMethod, error)
	GetMethodsByUserID(userID uint) ([]PaymentMethod, error)
	DeleteMethod(id uint) error

	CreatePayment(p *Payment) error
	GetPaymentByID(id uint) (*Payment, error)
	GetPaymentByIntentID(intentID string) (*Payment, error)
	GetPaymentsByPayerID(payerID uint) ([]Payment, error)
	GetPaymentsByReceiverID(receiverID uint) ([]Payment, error)
	FailPendingOlderThan(cutoff time.Time) (int64, error)

	Transaction(fn func(tx *gorm.DB) error) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateMethod(m *PaymentMethod) error {
	return r.db.Create(m).Error
}

func (r *paymentRepository) GetMethodByID(id uint) (*PaymentMethod, error) {
	var m PaymentMethod
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *paymentRepository) GetMethodsByUserID(userID uint) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&methods).Error
	return methods, err
}

func (r *paymentRepository) DeleteMethod(id uint) error {
	return r.db.Delete(&PaymentMethod{}, id).Error
}

func (r *paymentRepository) CreatePayment(p *Payment) error {
	return r.db.Create(p).Error
}

func (r *paymentRepository) GetPaymentByID(id uint) (*Payment, error) {
	var p Payment
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) GetPaymentByIntentID(intentID string) (*Payment, error) {
	var p Payment
	err := r.db.Where("intent_id = ?", intentID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) GetPaymentsByPayerID(payerID uint) ([]Payment, error) {
	var payments []Payment
	err := r.db.Where("payer_id = ?", payerID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) GetPaymentsByReceiverID(receiverID uint) ([]Payment, error) {
	var payments []Payment
	err := r.db.Where("receiver_id = ?", receiverID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

// FailPendingOlderThan marks stale pending payments as failed and reports how
// many rows changed.
func (r *paymentRepository) FailPendingOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Model(&Payment{}).
		Where("status = ? AND created_at < ?", StatusPending, cutoff).
		Update("status", StatusFailed)
	return res.RowsAffected, res.Error
}

func (r *paymentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
