package follower

import (
	"errors"

	"gorm.io/gorm"
)

type FollowerRepository interface {
	CreateFollower(f *Follower) error
	GetByPair(followerID, followingID uint) (*Follower, error)
	DeleteByPair(followerID, followingID uint) (int64, error)
	GetFollowers(userID uint) ([]Follower, error)
	GetFollowing(userID uint) ([]Follower, error)
}

type followerRepository struct {
	db *gorm.DB
}

func NewFollowerRepository(db *gorm.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) CreateFollower(f *Follower) error {
	return r.db.Create(f).Error
}

func (r *followerRepository) GetByPair(followerID, followingID uint) (*Follower, error) {
	var f Follower
	err := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *followerRepository) DeleteByPair(followerID, followingID uint) (int64, error) {
	res := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&Follower{})
	return res.RowsAffected, res.Error
}

func (r *followerRepository) GetFollowers(userID uint) ([]Follower, error) {
	var followers []Follower
	err := r.db.Where("following_id = ?", userID).Order("created_at DESC").Find(&followers).Error
	return followers, err
}

func (r *followerRepository) GetFollowing(userID uint) ([]Follower, error) {
	var following []Follower
	err := r.db.Where("follower_id = ?", userID).Order("created_at DESC").Find(&following).Error
	return following, err
}
