package invite

import (
	"time"

	"gorm.io/gorm"
)

// ArenaInvite grants a user permission to join an arena. One row per
// (arena, user) pair.
type ArenaInvite struct {
	gorm.Model
	ArenaID   uint      `json:"arena_id" gorm:"uniqueIndex:idx_arena_invite;not null"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_arena_invite;not null"`
	InvitedAt time.Time `json:"invited_at" gorm:"autoCreateTime"`
}

type CreateInviteRequest struct {
	ArenaID uint `json:"arena_id" binding:"required"`
	UserID  uint `json:"user_id" binding:"required"`
}

// InviteUserRequest is the body for the nested /arenas/:id/invites endpoints.
type InviteUserRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}
