package comment

import (
	"errors"

	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateChatComment(comment *ChatComment) error
	GetChatCommentByID(id uint) (*ChatComment, error)
	GetCommentsByChatID(chatID uint) ([]ChatComment, error)
	GetCommentsByUserID(userID uint) ([]ChatComment, error)
	UpdateChatComment(comment *ChatComment) error
	DeleteChatComment(id uint) error
	CountCommentsByChatID(chatID uint) (int64, error)

	CreateArenaComment(comment *ArenaComment) error
	GetCommentsByArenaID(arenaID uint) ([]ArenaComment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateChatComment(comment *ChatComment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetChatCommentByID(id uint) (*ChatComment, error) {
	var comment ChatComment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetCommentsByChatID(chatID uint) ([]ChatComment, error) {
	var comments []ChatComment
	err := r.db.Where("chat_id = ?", chatID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) GetCommentsByUserID(userID uint) ([]ChatComment, error) {
	var comments []ChatComment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) UpdateChatComment(comment *ChatComment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) DeleteChatComment(id uint) error {
	return r.db.Delete(&ChatComment{}, id).Error
}

func (r *commentRepository) CountCommentsByChatID(chatID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ChatComment{}).Where("chat_id = ?", chatID).Count(&count).Error
	return count, err
}

func (r *commentRepository) CreateArenaComment(comment *ArenaComment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetCommentsByArenaID(arenaID uint) ([]ArenaComment, error) {
	var comments []ArenaComment
	err := r.db.Where("arena_id = ?", arenaID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}
