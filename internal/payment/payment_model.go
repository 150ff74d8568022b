package payment

import (
	"time"

	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/internal/models"
)

const (
	MethodCreditCard = "credit_card"
	MethodPaypal     = "paypal"
)

const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// PaymentMethod is a stored payment instrument belonging to a user.
type PaymentMethod struct {
	gorm.Model
	UserID     uint           `gorm:"not null;index" json:"userId"`
	MethodType string         `gorm:"size:32;not null" json:"methodType"`
	Details    models.JSONMap `gorm:"type:jsonb" json:"details"`
}

func (m *PaymentMethod) OwnerID() uint { return m.UserID }

// Payment is a transfer from a payer to an arena creator. Amount is in the
// smallest currency unit. IntentID ties the row to the gateway intent.
type Payment struct {
	gorm.Model
	PayerID    uint       `gorm:"not null;index" json:"payerId"`
	ReceiverID uint       `gorm:"not null;index" json:"receiverId"`
	ArenaID    uint       `gorm:"not null;index" json:"arenaId"`
	MethodID   *uint      `json:"methodId,omitempty"`
	Amount     int64      `gorm:"not null" json:"amount"`
	Status     string     `gorm:"size:16;not null;default:pending" json:"status"`
	IntentID   string     `gorm:"size:128;uniqueIndex" json:"intentId"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
}

type CreateMethodRequest struct {
	MethodType string         `json:"methodType" binding:"required,oneof=credit_card paypal"`
	Details    models.JSONMap `json:"details"`
}

type CreatePaymentRequest struct {
	ReceiverID uint  `json:"receiverId" binding:"required"`
	ArenaID    uint  `json:"arenaId" binding:"required"`
	MethodID   *uint `json:"methodId"`
	Amount     int64 `json:"amount" binding:"required,gt=0"`
}

type CreateIntentRequest struct {
	ArenaID  uint  `json:"arenaId" binding:"required"`
	MethodID *uint `json:"methodId"`
}

type VerifyPaymentRequest struct {
	IntentID string `json:"intentId" binding:"required"`
}

// IntentResponse is returned after creating a gateway payment intent.
type IntentResponse struct {
	PaymentID    uint   `json:"paymentId"`
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}
