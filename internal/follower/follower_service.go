package follower

import (
	"github.com/SharanSapkota/arena-server/internal/user"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
)

// FollowerService implements the follow/unfollow rules.
type FollowerService struct {
	repo     FollowerRepository
	userRepo user.UserRepository
}

func NewFollowerService(repo FollowerRepository, userRepo user.UserRepository) *FollowerService {
	return &FollowerService{repo: repo, userRepo: userRepo}
}

func (s *FollowerService) Follow(followerID, followingID uint) (*Follower, error) {
	if followerID == followingID {
		return nil, apperr.BadRequest("You cannot follow yourself")
	}

	target, err := s.userRepo.GetUserByID(followingID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.NotFound("User not found")
	}

	existing, err := s.repo.GetByPair(followerID, followingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Already following this user")
	}

	f := &Follower{FollowerID: followerID, FollowingID: followingID}
	if err := s.repo.CreateFollower(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FollowerService) Unfollow(followerID, followingID uint) error {
	rows, err := s.repo.DeleteByPair(followerID, followingID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("Follow relationship not found")
	}
	return nil
}

func (s *FollowerService) GetFollowers(userID uint) ([]Follower, error) {
	return s.repo.GetFollowers(userID)
}

func (s *FollowerService) GetFollowing(userID uint) ([]Follower, error) {
	return s.repo.GetFollowing(userID)
}
