package verification

import (
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// VerificationService manages external identity verifications.
type VerificationService struct {
	repo VerificationRepository
}

func NewVerificationService(repo VerificationRepository) *VerificationService {
	return &VerificationService{repo: repo}
}

func (s *VerificationService) CreateVerification(userID uint, provider string) (*UserVerification, error) {
	existing, err := s.repo.GetByUserAndProvider(userID, provider)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Verification already exists for this provider")
	}

	v := &UserVerification{UserID: userID, Provider: provider}
	if err := s.repo.CreateVerification(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VerificationService) GetVerification(id uint) (*UserVerification, error) {
	v, err := s.repo.GetVerificationByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("Verification not found")
	}
	return v, nil
}

func (s *VerificationService) GetUserVerifications(userID uint) ([]UserVerification, error) {
	return s.repo.GetVerificationsByUserID(userID)
}

func (s *VerificationService) DeleteVerification(id, actorID uint) error {
	v, err := s.GetVerification(id)
	if err != nil {
		return err
	}
	if err := common.EnsureOwner(v, actorID, "Not authorized to delete this verification"); err != nil {
		return err
	}
	return s.repo.DeleteVerification(id)
}
