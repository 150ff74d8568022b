package guest

import (
	"github.com/google/uuid"

	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// GuestService tracks anonymous visitor sessions.
type GuestService struct {
	repo GuestRepository
}

func NewGuestService(repo GuestRepository) *GuestService {
	return &GuestService{repo: repo}
}

func (s *GuestService) CreateGuest(ipAddress, userAgent string) (*Guest, error) {
	g := &Guest{
		IPAddress: ipAddress,
		UserAgent: userAgent,
		SessionID: uuid.NewString(),
	}
	if err := s.repo.CreateGuest(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GuestService) GetGuest(id uint) (*Guest, error) {
	g, err := s.repo.GetGuestByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperr.NotFound("Guest not found")
	}
	return g, nil
}

func (s *GuestService) GetGuestBySession(sessionID string) (*Guest, error) {
	g, err := s.repo.GetGuestBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperr.NotFound("Guest not found")
	}
	return g, nil
}

func (s *GuestService) DeleteGuest(id uint) error {
	if _, err := s.GetGuest(id); err != nil {
		return err
	}
	return s.repo.DeleteGuest(id)
}
