package comment

import "gorm.io/gorm"

// ChatComment is a comment attached to a chat message.
type ChatComment struct {
	gorm.Model
	ChatID  uint   `gorm:"not null;index" json:"chatId"`
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func (cc *ChatComment) OwnerID() uint { return cc.UserID }

// ArenaComment is a comment posted on an arena's page.
type ArenaComment struct {
	gorm.Model
	ArenaID     uint   `gorm:"not null;index" json:"arenaId"`
	CommenterID uint   `gorm:"not null;index" json:"commenterId"`
	Content     string `gorm:"type:text;not null" json:"content"`
}

func (ac *ArenaComment) OwnerID() uint { return ac.CommenterID }

type CreateCommentRequest struct {
	ChatID  uint   `json:"chatId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CreateArenaCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
