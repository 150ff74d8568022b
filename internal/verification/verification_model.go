package verification

import (
	"time"

	"gorm.io/gorm"
)

const (
	ProviderTwitter  = "twitter"
	ProviderLinkedIn = "linkedin"
)

// UserVerification links a user to an external identity provider.
type UserVerification struct {
	gorm.Model
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_provider" json:"userId"`
	Provider   string    `gorm:"size:32;not null;uniqueIndex:idx_user_provider" json:"provider"`
	VerifiedAt time.Time `gorm:"autoCreateTime" json:"verifiedAt"`
}

func (v *UserVerification) OwnerID() uint { return v.UserID }

type CreateVerificationRequest struct {
	Provider string `json:"provider" binding:"required,oneof=twitter linkedin"`
}
