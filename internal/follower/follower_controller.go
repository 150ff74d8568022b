package follower

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
)

type FollowerController struct {
	service *FollowerService
}

func NewFollowerController(service *FollowerService) *FollowerController {
	return &FollowerController{service: service}
}

// Follow godoc
// @Summary      Follow a user
// @Tags         Followers
// @Security     BearerAuth
// @Produce      json
// @Param        userId path int true "User ID to follow"
// @Success      201 {object} Follower
// @Failure      409 {object} responses.ErrorResponse
// @Router       /followers/{userId} [post]
func (fc *FollowerController) Follow(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	targetID, err := parseID(c, "userId")
	if err != nil {
		responses.BadRequest(c, "invalid user ID")
		return
	}

	f, err := fc.service.Follow(userID, targetID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         Followers
// @Security     BearerAuth
// @Param        userId path int true "User ID to unfollow"
// @Success      204
// @Failure      404 {object} responses.ErrorResponse
// @Router       /followers/{userId} [delete]
func (fc *FollowerController) Unfollow(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	targetID, err := parseID(c, "userId")
	if err != nil {
		responses.BadRequest(c, "invalid user ID")
		return
	}

	if err := fc.service.Unfollow(userID, targetID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetFollowers godoc
// @Summary      List a user's followers
// @Tags         Followers
// @Security     BearerAuth
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200 {array} Follower
// @Router       /followers/followers/{userId} [get]
func (fc *FollowerController) GetFollowers(c *gin.Context) {
	targetID, err := parseID(c, "userId")
	if err != nil {
		responses.BadRequest(c, "invalid user ID")
		return
	}

	followers, err := fc.service.GetFollowers(targetID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}

// GetFollowing godoc
// @Summary      List users a user follows
// @Tags         Followers
// @Security     BearerAuth
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200 {array} Follower
// @Router       /followers/following/{userId} [get]
func (fc *FollowerController) GetFollowing(c *gin.Context) {
	targetID, err := parseID(c, "userId")
	if err != nil {
		responses.BadRequest(c, "invalid user ID")
		return
	}

	following, err := fc.service.GetFollowing(targetID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, following)
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
