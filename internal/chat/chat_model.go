// chat/model.go
package chat

import (
	"gorm.io/gorm"
)

const (
	TypeText  = "text"
	TypeImage = "image"
	TypeVideo = "video"
)

// Chat is a message posted in an arena.
type Chat struct {
	gorm.Model
	ArenaID uint   `json:"arena_id" gorm:"index;not null"`
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Content string `json:"content" gorm:"not null"`
	Type    string `json:"type" gorm:"default:text"`
}

// OwnerID implements common.Owned.
func (c *Chat) OwnerID() uint {
	return c.UserID
}

// ChatLike records one user liking one chat. One row per (chat, user) pair.
type ChatLike struct {
	gorm.Model
	ChatID uint `json:"chat_id" gorm:"uniqueIndex:idx_chat_like;not null"`
	UserID uint `json:"user_id" gorm:"uniqueIndex:idx_chat_like;not null"`
}

type CreateChatRequest struct {
	ArenaID uint   `json:"arena_id" binding:"required"`
	Content string `json:"content" binding:"required,max=5000"`
	Type    string `json:"type" binding:"omitempty,oneof=text image video"`
}

// CreateArenaChatRequest is the body for the nested /arenas/:id/chats endpoint.
type CreateArenaChatRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
	Type    string `json:"type" binding:"omitempty,oneof=text image video"`
}

type UpdateChatRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}
