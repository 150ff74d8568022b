package guest

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type GuestRepository interface {
	CreateGuest(g *Guest) error
	GetGuestByID(id uint) (*Guest, error)
	GetGuestBySessionID(sessionID string) (*Guest, error)
	DeleteGuest(id uint) error
	DeleteGuestsOlderThan(cutoff time.Time) (int64, error)
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) CreateGuest(g *Guest) error {
	return r.db.Create(g).Error
}

func (r *guestRepository) GetGuestByID(id uint) (*Guest, error) {
	var g Guest
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *guestRepository) GetGuestBySessionID(sessionID string) (*Guest, error) {
	var g Guest
	err := r.db.Where("session_id = ?", sessionID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *guestRepository) DeleteGuest(id uint) error {
	return r.db.Delete(&Guest{}, id).Error
}

func (r *guestRepository) DeleteGuestsOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&Guest{})
	return res.RowsAffected, res.Error
}
