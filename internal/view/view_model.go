package view

import (
	"time"

	"gorm.io/gorm"
)

// ArenaView records a visit to an arena by a user or a guest.
type ArenaView struct {
	gorm.Model
	ArenaID   uint      `gorm:"not null;index" json:"arenaId"`
	ViewerID  *uint     `gorm:"index" json:"viewerId,omitempty"`
	GuestID   *uint     `gorm:"index" json:"guestId,omitempty"`
	IPAddress string    `gorm:"size:64" json:"ipAddress"`
	UserAgent string    `gorm:"size:255" json:"userAgent"`
	ViewedAt  time.Time `gorm:"autoCreateTime" json:"viewedAt"`
}
