package arena

import (
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// ArenaService implements arena CRUD with creator-only mutation.
type ArenaService struct {
	repo ArenaRepository
}

func NewArenaService(repo ArenaRepository) *ArenaService {
	return &ArenaService{repo: repo}
}

func (s *ArenaService) CreateArena(creatorID uint, req CreateArenaRequest) (*Arena, error) {
	a := &Arena{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   creatorID,
		IsPublic:    true,
		EntryFee:    req.EntryFee,
		Status:      StatusActive,
	}
	if req.IsPublic != nil {
		a.IsPublic = *req.IsPublic
	}
	if err := s.repo.CreateArena(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArenaService) GetArena(id uint) (*Arena, error) {
	a, err := s.repo.GetArenaByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Arena not found")
	}
	return a, nil
}

func (s *ArenaService) GetAllArenas() ([]Arena, error) {
	return s.repo.GetAllArenas()
}

func (s *ArenaService) UpdateArena(id, actorID uint, req UpdateArenaRequest) (*Arena, error) {
	a, err := s.GetArena(id)
	if err != nil {
		return nil, err
	}
	if err := common.EnsureOwner(a, actorID, "Not authorized to update this arena"); err != nil {
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.IsPublic != nil {
		a.IsPublic = *req.IsPublic
	}
	if req.EntryFee != nil {
		a.EntryFee = *req.EntryFee
	}
	if req.Status != nil {
		a.Status = *req.Status
	}

	if err := s.repo.UpdateArena(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArenaService) DeleteArena(id, actorID uint) error {
	a, err := s.GetArena(id)
	if err != nil {
		return err
	}
	if err := common.EnsureOwner(a, actorID, "Not authorized to delete this arena"); err != nil {
		return err
	}
	return s.repo.DeleteArena(id)
}

// GetParticipants returns the ids of users who joined the arena.
func (s *ArenaService) GetParticipants(id uint) ([]uint, error) {
	if _, err := s.GetArena(id); err != nil {
		return nil, err
	}
	return s.repo.GetParticipantIDs(id)
}
