package arena

import (
	"errors"

	"gorm.io/gorm"
)

type ArenaRepository interface {
	CreateArena(a *Arena) error
	GetArenaByID(id uint) (*Arena, error)
	GetAllArenas() ([]Arena, error)
	UpdateArena(a *Arena) error
	DeleteArena(id uint) error

	AddParticipant(arenaID, userID uint) error
	HasParticipant(arenaID, userID uint) (bool, error)
	GetParticipantIDs(arenaID uint) ([]uint, error)
}

type arenaRepository struct {
	db *gorm.DB
}

// NewArenaRepository creates a new instance of ArenaRepository.
func NewArenaRepository(db *gorm.DB) ArenaRepository {
	return &arenaRepository{db: db}
}

func (r *arenaRepository) CreateArena(a *Arena) error {
	return r.db.Create(a).Error
}

func (r *arenaRepository) GetArenaByID(id uint) (*Arena, error) {
	var a Arena
	err := r.db.First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *arenaRepository) GetAllArenas() ([]Arena, error) {
	var arenas []Arena
	err := r.db.Order("created_at DESC").Find(&arenas).Error
	return arenas, err
}

func (r *arenaRepository) UpdateArena(a *Arena) error {
	return r.db.Save(a).Error
}

func (r *arenaRepository) DeleteArena(id uint) error {
	return r.db.Delete(&Arena{}, id).Error
}

func (r *arenaRepository) AddParticipant(arenaID, userID uint) error {
	return r.db.Create(&ArenaParticipant{ArenaID: arenaID, UserID: userID}).Error
}

func (r *arenaRepository) HasParticipant(arenaID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&ArenaParticipant{}).
		Where("arena_id = ? AND user_id = ?", arenaID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *arenaRepository) GetParticipantIDs(arenaID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&ArenaParticipant{}).
		Where("arena_id = ?", arenaID).
		Pluck("user_id", &ids).Error
	return ids, err
}
