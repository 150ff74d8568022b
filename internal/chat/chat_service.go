package chat

import (
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// ChatService implements chat CRUD with author-only mutation, plus likes.
type ChatService struct {
	repo      ChatRepository
	arenaRepo arena.ArenaRepository
}

func NewChatService(repo ChatRepository, arenaRepo arena.ArenaRepository) *ChatService {
	return &ChatService{repo: repo, arenaRepo: arenaRepo}
}

func (s *ChatService) CreateChat(arenaID, userID uint, content, chatType string) (*Chat, error) {
	a, err := s.arenaRepo.GetArenaByID(arenaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Arena not found")
	}

	if chatType == "" {
		chatType = TypeText
	}

	ch := &Chat{
		ArenaID: arenaID,
		UserID:  userID,
		Content: content,
		Type:    chatType,
	}
	if err := s.repo.CreateChat(ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *ChatService) GetChat(id uint) (*Chat, error) {
	ch, err := s.repo.GetChatByID(id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, apperr.NotFound("Chat not found")
	}
	return ch, nil
}

func (s *ChatService) GetArenaChats(arenaID uint) ([]Chat, error) {
	return s.repo.GetChatsByArenaID(arenaID)
}

func (s *ChatService) GetUserChats(userID uint) ([]Chat, error) {
	return s.repo.GetChatsByUserID(userID)
}

func (s *ChatService) UpdateChat(id, actorID uint, content string) (*Chat, error) {
	ch, err := s.GetChat(id)
	if err != nil {
		return nil, err
	}
	if err := common.EnsureOwner(ch, actorID, "Not authorized to update this chat"); err != nil {
		return nil, err
	}

	ch.Content = content
	if err := s.repo.UpdateChat(ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *ChatService) DeleteChat(id, actorID uint) error {
	ch, err := s.GetChat(id)
	if err != nil {
		return err
	}
	if err := common.EnsureOwner(ch, actorID, "Not authorized to delete this chat"); err != nil {
		return err
	}
	return s.repo.DeleteChat(id)
}

// --- Likes ---

func (s *ChatService) LikeChat(chatID, userID uint) (*ChatLike, error) {
	if _, err := s.GetChat(chatID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetLikeByChatAndUser(chatID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Chat already liked")
	}

	like := &ChatLike{ChatID: chatID, UserID: userID}
	if err := s.repo.CreateLike(like); err != nil {
		return nil, err
	}
	return like, nil
}

func (s *ChatService) GetLike(id uint) (*ChatLike, error) {
	like, err := s.repo.GetLikeByID(id)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, apperr.NotFound("Like not found")
	}
	return like, nil
}

func (s *ChatService) GetChatLikes(chatID uint) ([]ChatLike, error) {
	return s.repo.GetLikesByChatID(chatID)
}

func (s *ChatService) GetUserLikes(userID uint) ([]ChatLike, error) {
	return s.repo.GetLikesByUserID(userID)
}

func (s *ChatService) UnlikeChat(chatID, userID uint) error {
	affected, err := s.repo.DeleteLikeByChatAndUser(chatID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Like not found")
	}
	return nil
}

func (s *ChatService) GetLikeCount(chatID uint) (int64, error) {
	return s.repo.CountLikesByChatID(chatID)
}
