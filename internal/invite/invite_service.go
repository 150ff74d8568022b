package invite

import (
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// InviteService manages arena invites. Only the arena creator may issue or
// revoke them.
type InviteService struct {
	repo      InviteRepository
	arenaRepo arena.ArenaRepository
}

func NewInviteService(repo InviteRepository, arenaRepo arena.ArenaRepository) *InviteService {
	return &InviteService{repo: repo, arenaRepo: arenaRepo}
}

func (s *InviteService) requireCreator(arenaID, actorID uint, denied string) (*arena.Arena, error) {
	a, err := s.arenaRepo.GetArenaByID(arenaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Arena not found")
	}
	if err := common.EnsureOwner(a, actorID, denied); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *InviteService) CreateInvite(arenaID, actorID, userID uint) (*ArenaInvite, error) {
	if _, err := s.requireCreator(arenaID, actorID, "Not authorized to invite users to this arena"); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetInviteByArenaAndUser(arenaID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User already invited to this arena")
	}

	inv := &ArenaInvite{ArenaID: arenaID, UserID: userID}
	if err := s.repo.CreateInvite(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InviteService) GetInvite(id uint) (*ArenaInvite, error) {
	inv, err := s.repo.GetInviteByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperr.NotFound("Invite not found")
	}
	return inv, nil
}

func (s *InviteService) GetArenaInvites(arenaID uint) ([]ArenaInvite, error) {
	return s.repo.GetInvitesByArenaID(arenaID)
}

func (s *InviteService) GetUserInvites(userID uint) ([]ArenaInvite, error) {
	return s.repo.GetInvitesByUserID(userID)
}

func (s *InviteService) RemoveInvite(id, actorID uint) error {
	inv, err := s.GetInvite(id)
	if err != nil {
		return err
	}
	if _, err := s.requireCreator(inv.ArenaID, actorID, "Not authorized to remove this invite"); err != nil {
		return err
	}
	return s.repo.DeleteInvite(id)
}

func (s *InviteService) RemoveInviteByArenaAndUser(arenaID, userID, actorID uint) error {
	if _, err := s.requireCreator(arenaID, actorID, "Not authorized to remove this invite"); err != nil {
		return err
	}

	affected, err := s.repo.DeleteInviteByArenaAndUser(arenaID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Invite not found")
	}
	return nil
}
