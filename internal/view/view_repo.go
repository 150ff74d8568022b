package view

import (
	"errors"

	"gorm.io/gorm"
)

type ViewRepository interface {
	CreateView(v *ArenaView) error
	GetViewByID(id uint) (*ArenaView, error)
	GetViewsByArenaID(arenaID uint) ([]ArenaView, error)
	GetViewsByViewerID(viewerID uint) ([]ArenaView, error)
	DeleteView(id uint) error
	CountViewsByArenaID(arenaID uint) (int64, error)
}

type viewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db: db}
}

func (r *viewRepository) CreateView(v *ArenaView) error {
	return r.db.Create(v).Error
}

func (r *viewRepository) GetViewByID(id uint) (*ArenaView, error) {
	var v ArenaView
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *viewRepository) GetViewsByArenaID(arenaID uint) ([]ArenaView, error) {
	var views []ArenaView
	err := r.db.Where("arena_id = ?", arenaID).Order("viewed_at DESC").Find(&views).Error
	return views, err
}

func (r *viewRepository) GetViewsByViewerID(viewerID uint) ([]ArenaView, error) {
	var views []ArenaView
	err := r.db.Where("viewer_id = ?", viewerID).Order("viewed_at DESC").Find(&views).Error
	return views, err
}

func (r *viewRepository) DeleteView(id uint) error {
	return r.db.Delete(&ArenaView{}, id).Error
}

func (r *viewRepository) CountViewsByArenaID(arenaID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ArenaView{}).Where("arena_id = ?", arenaID).Count(&count).Error
	return count, err
}
