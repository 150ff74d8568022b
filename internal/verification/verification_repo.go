package verification

import (
	"errors"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	CreateVerification(v *UserVerification) error
	GetVerificationByID(id uint) (*UserVerification, error)
	GetByUserAndProvider(userID uint, provider string) (*UserVerification, error)
	GetVerificationsByUserID(userID uint) ([]UserVerification, error)
	DeleteVerification(id uint) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) CreateVerification(v *UserVerification) error {
	return r.db.Create(v).Error
}

func (r *verificationRepository) GetVerificationByID(id uint) (*UserVerification, error) {
	var v UserVerification
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepository) GetByUserAndProvider(userID uint, provider string) (*UserVerification, error) {
	var v UserVerification
	err := r.db.Where("user_id = ? AND provider = ?", userID, provider).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepository) GetVerificationsByUserID(userID uint) ([]UserVerification, error) {
	var verifications []UserVerification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&verifications).Error
	return verifications, err
}

func (r *verificationRepository) DeleteVerification(id uint) error {
	return r.db.Delete(&UserVerification{}, id).Error
}
