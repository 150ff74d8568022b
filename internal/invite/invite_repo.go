package invite

import (
	"errors"

	"gorm.io/gorm"
)

type InviteRepository interface {
	CreateInvite(inv *ArenaInvite) error
	GetInviteByID(id uint) (*ArenaInvite, error)
	GetInviteByArenaAndUser(arenaID, userID uint) (*ArenaInvite, error)
	GetInvitesByArenaID(arenaID uint) ([]ArenaInvite, error)
	GetInvitesByUserID(userID uint) ([]ArenaInvite, error)
	DeleteInvite(id uint) error
	DeleteInviteByArenaAndUser(arenaID, userID uint) (int64, error)
}

type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new instance of InviteRepository.
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) CreateInvite(inv *ArenaInvite) error {
	return r.db.Create(inv).Error
}

func (r *inviteRepository) GetInviteByID(id uint) (*ArenaInvite, error) {
	var inv ArenaInvite
	err := r.db.First(&inv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *inviteRepository) GetInviteByArenaAndUser(arenaID, userID uint) (*ArenaInvite, error) {
	var inv ArenaInvite
	err := r.db.Where("arena_id = ? AND user_id = ?", arenaID, userID).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *inviteRepository) GetInvitesByArenaID(arenaID uint) ([]ArenaInvite, error) {
	var invites []ArenaInvite
	err := r.db.Where("arena_id = ?", arenaID).Order("invited_at DESC").Find(&invites).Error
	return invites, err
}

func (r *inviteRepository) GetInvitesByUserID(userID uint) ([]ArenaInvite, error) {
	var invites []ArenaInvite
	err := r.db.Where("user_id = ?", userID).Order("invited_at DESC").Find(&invites).Error
	return invites, err
}

func (r *inviteRepository) DeleteInvite(id uint) error {
	return r.db.Delete(&ArenaInvite{}, id).Error
}

func (r *inviteRepository) DeleteInviteByArenaAndUser(arenaID, userID uint) (int64, error) {
	result := r.db.Where("arena_id = ? AND user_id = ?", arenaID, userID).Delete(&ArenaInvite{})
	return result.RowsAffected, result.Error
}
