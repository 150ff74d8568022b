// arena/model.go
package arena

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// Arena is a user-created topic room. CreatorID is set once at creation and
// is the sole authority for update/delete/invite actions.
type Arena struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	CreatorID   uint   `json:"creator_id" gorm:"index;not null"`
	IsPublic    bool   `json:"is_public" gorm:"default:true"`
	EntryFee    int64  `json:"entry_fee" gorm:"default:0"`
	Status      string `json:"status" gorm:"default:active;index"`
}

// OwnerID implements common.Owned.
func (a *Arena) OwnerID() uint {
	return a.CreatorID
}

// ArenaParticipant links a user who joined an arena. One row per pair.
type ArenaParticipant struct {
	gorm.Model
	ArenaID uint `json:"arena_id" gorm:"uniqueIndex:idx_arena_participant;not null"`
	UserID  uint `json:"user_id" gorm:"uniqueIndex:idx_arena_participant;not null"`
}

type CreateArenaRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	IsPublic    *bool  `json:"is_public" binding:"omitempty"`
	EntryFee    int64  `json:"entry_fee" binding:"omitempty,min=0"`
}

type UpdateArenaRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	IsPublic    *bool   `json:"is_public,omitempty"`
	EntryFee    *int64  `json:"entry_fee,omitempty" binding:"omitempty,min=0"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active closed"`
}

type ArenaResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatorID    uint      `json:"creator_id"`
	IsPublic     bool      `json:"is_public"`
	EntryFee     int64     `json:"entry_fee"`
	Status       string    `json:"status"`
	Participants []uint    `json:"participants,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FilterArenaRecord(a *Arena, participants []uint) ArenaResponse {
	return ArenaResponse{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		CreatorID:    a.CreatorID,
		IsPublic:     a.IsPublic,
		EntryFee:     a.EntryFee,
		Status:       a.Status,
		Participants: participants,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
