package guest

import "gorm.io/gorm"

// Guest is an anonymous visitor tracked by a generated session id.
type Guest struct {
	gorm.Model
	IPAddress string `gorm:"size:64" json:"ipAddress"`
	UserAgent string `gorm:"size:255" json:"userAgent"`
	SessionID string `gorm:"size:64;not null;uniqueIndex" json:"sessionId"`
}

type CreateGuestRequest struct {
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
}
