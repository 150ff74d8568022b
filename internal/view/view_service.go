package view

import (
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// ViewService records and queries arena page views.
type ViewService struct {
	repo      ViewRepository
	arenaRepo arena.ArenaRepository
}

func NewViewService(repo ViewRepository, arenaRepo arena.ArenaRepository) *ViewService {
	return &ViewService{repo: repo, arenaRepo: arenaRepo}
}

// RecordView stores a view for an authenticated user or a guest. Exactly one
// of viewerID and guestID may be set.
func (s *ViewService) RecordView(arenaID uint, viewerID, guestID *uint, ipAddress, userAgent string) (*ArenaView, error) {
	a, err := s.arenaRepo.GetArenaByID(arenaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Arena not found")
	}

	v := &ArenaView{
		ArenaID:   arenaID,
		ViewerID:  viewerID,
		GuestID:   guestID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.repo.CreateView(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *ViewService) GetView(id uint) (*ArenaView, error) {
	v, err := s.repo.GetViewByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("Arena view not found")
	}
	return v, nil
}

func (s *ViewService) GetArenaViews(arenaID uint) ([]ArenaView, error) {
	return s.repo.GetViewsByArenaID(arenaID)
}

func (s *ViewService) GetUserViews(viewerID uint) ([]ArenaView, error) {
	return s.repo.GetViewsByViewerID(viewerID)
}

func (s *ViewService) DeleteView(id, actorID uint) error {
	v, err := s.GetView(id)
	if err != nil {
		return err
	}
	if v.ViewerID == nil || *v.ViewerID != actorID {
		return apperr.Forbidden("Not authorized to remove this view")
	}
	return s.repo.DeleteView(id)
}

func (s *ViewService) GetViewCount(arenaID uint) (int64, error) {
	return s.repo.CountViewsByArenaID(arenaID)
}
