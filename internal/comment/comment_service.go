package comment

import (
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/chat"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// CommentService implements comment business rules for chats and arenas.
type CommentService struct {
	repo      CommentRepository
	chatRepo  chat.ChatRepository
	arenaRepo arena.ArenaRepository
}

func NewCommentService(repo CommentRepository, chatRepo chat.ChatRepository, arenaRepo arena.ArenaRepository) *CommentService {
	return &CommentService{repo: repo, chatRepo: chatRepo, arenaRepo: arenaRepo}
}

func (s *CommentService) CreateComment(chatID, userID uint, content string) (*ChatComment, error) {
	ch, err := s.chatRepo.GetChatByID(chatID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, apperr.NotFound("Chat not found")
	}

	comment := &ChatComment{ChatID: chatID, UserID: userID, Content: content}
	if err := s.repo.CreateChatComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComment(id uint) (*ChatComment, error) {
	comment, err := s.repo.GetChatCommentByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound("Comment not found")
	}
	return comment, nil
}

func (s *CommentService) GetChatComments(chatID uint) ([]ChatComment, error) {
	return s.repo.GetCommentsByChatID(chatID)
}

func (s *CommentService) GetUserComments(userID uint) ([]ChatComment, error) {
	return s.repo.GetCommentsByUserID(userID)
}

func (s *CommentService) UpdateComment(id, actorID uint, content string) (*ChatComment, error) {
	comment, err := s.GetComment(id)
	if err != nil {
		return nil, err
	}
	if err := common.EnsureOwner(comment, actorID, "Not authorized to update this comment"); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.repo.UpdateChatComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(id, actorID uint) error {
	comment, err := s.GetComment(id)
	if err != nil {
		return err
	}
	if err := common.EnsureOwner(comment, actorID, "Not authorized to delete this comment"); err != nil {
		return err
	}
	return s.repo.DeleteChatComment(id)
}

func (s *CommentService) GetCommentCount(chatID uint) (int64, error) {
	return s.repo.CountCommentsByChatID(chatID)
}

func (s *CommentService) CreateArenaComment(arenaID, commenterID uint, content string) (*ArenaComment, error) {
	a, err := s.arenaRepo.GetArenaByID(arenaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Arena not found")
	}

	comment := &ArenaComment{ArenaID: arenaID, CommenterID: commenterID, Content: content}
	if err := s.repo.CreateArenaComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetArenaComments(arenaID uint) ([]ArenaComment, error) {
	return s.repo.GetCommentsByArenaID(arenaID)
}
