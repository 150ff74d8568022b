package follower

import "gorm.io/gorm"

// Follower records that FollowerID follows FollowingID.
type Follower struct {
	gorm.Model
	FollowerID  uint `gorm:"not null;uniqueIndex:idx_follower_following" json:"followerId"`
	FollowingID uint `gorm:"not null;uniqueIndex:idx_follower_following" json:"followingId"`
}
