package chat

import (
	"errors"

	"gorm.io/gorm"
)

type ChatRepository interface {
	CreateChat(ch *Chat) error
	GetChatByID(id uint) (*Chat, error)
	GetChatsByArenaID(arenaID uint) ([]Chat, error)
	GetChatsByUserID(userID uint) ([]Chat, error)
	UpdateChat(ch *Chat) error
	DeleteChat(id uint) error

	// Like methods
	CreateLike(like *ChatLike) error
	GetLikeByID(id uint) (*ChatLike, error)
	GetLikeByChatAndUser(chatID, userID uint) (*ChatLike, error)
	GetLikesByChatID(chatID uint) ([]ChatLike, error)
	GetLikesByUserID(userID uint) ([]ChatLike, error)
	DeleteLikeByChatAndUser(chatID, userID uint) (int64, error)
	CountLikesByChatID(chatID uint) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new instance of ChatRepository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// --- Chat methods ---

func (r *chatRepository) CreateChat(ch *Chat) error {
	return r.db.Create(ch).Error
}

func (r *chatRepository) GetChatByID(id uint) (*Chat, error) {
	var ch Chat
	err := r.db.First(&ch, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ch, nil
}

func (r *chatRepository) GetChatsByArenaID(arenaID uint) ([]Chat, error) {
	var chats []Chat
	err := r.db.Where("arena_id = ?", arenaID).Order("created_at ASC").Find(&chats).Error
	return chats, err
}

func (r *chatRepository) GetChatsByUserID(userID uint) ([]Chat, error) {
	var chats []Chat
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&chats).Error
	return chats, err
}

func (r *chatRepository) UpdateChat(ch *Chat) error {
	return r.db.Save(ch).Error
}

func (r *chatRepository) DeleteChat(id uint) error {
	return r.db.Delete(&Chat{}, id).Error
}

// --- Like methods ---

func (r *chatRepository) CreateLike(like *ChatLike) error {
	return r.db.Create(like).Error
}

func (r *chatRepository) GetLikeByID(id uint) (*ChatLike, error) {
	var like ChatLike
	err := r.db.First(&like, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *chatRepository) GetLikeByChatAndUser(chatID, userID uint) (*ChatLike, error) {
	var like ChatLike
	err := r.db.Where("chat_id = ? AND user_id = ?", chatID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *chatRepository) GetLikesByChatID(chatID uint) ([]ChatLike, error) {
	var likes []ChatLike
	err := r.db.Where("chat_id = ?", chatID).Find(&likes).Error
	return likes, err
}

func (r *chatRepository) GetLikesByUserID(userID uint) ([]ChatLike, error) {
	var likes []ChatLike
	err := r.db.Where("user_id = ?", userID).Find(&likes).Error
	return likes, err
}

func (r *chatRepository) DeleteLikeByChatAndUser(chatID, userID uint) (int64, error) {
	result := r.db.Where("chat_id = ? AND user_id = ?", chatID, userID).Delete(&ChatLike{})
	return result.RowsAffected, result.Error
}

func (r *chatRepository) CountLikesByChatID(chatID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ChatLike{}).Where("chat_id = ?", chatID).Count(&count).Error
	return count, err
}
