package invite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
)

// InviteController handles arena invite endpoints.
type InviteController struct {
	service *InviteService
}

func NewInviteController(service *InviteService) *InviteController {
	return &InviteController{service: service}
}

// CreateInvite godoc
// @Summary      Invite a user to an arena (creator only)
// @Tags         Invites
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        invite body CreateInviteRequest true "Invite details"
// @Success      201 {object} ArenaInvite
// @Failure      403 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /arena-invites [post]
func (ic *InviteController) CreateInvite(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	inv, err := ic.service.CreateInvite(req.ArenaID, userID, req.UserID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GetInvite godoc
// @Summary      Get an invite by id
// @Tags         Invites
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Invite ID"
// @Success      200 {object} ArenaInvite
// @Failure      404 {object} responses.ErrorResponse
// @Router       /arena-invites/{id} [get]
func (ic *InviteController) GetInvite(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid invite ID")
		return
	}

	inv, err := ic.service.GetInvite(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GetArenaInvites godoc
// @Summary      List invites for an arena
// @Tags         Invites
// @Security     BearerAuth
// @Produce      json
// @Param        arenaId path int true "Arena ID"
// @Success      200 {array} ArenaInvite
// @Router       /arena-invites/arena/{arenaId} [get]
func (ic *InviteController) GetArenaInvites(c *gin.Context) {
	arenaID, err := parseID(c, "arenaId")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	invites, err := ic.service.GetArenaInvites(arenaID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// GetUserInvites godoc
// @Summary      List invites for the authenticated user
// @Tags         Invites
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ArenaInvite
// @Router       /arena-invites/user/invites [get]
func (ic *InviteController) GetUserInvites(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	invites, err := ic.service.GetUserInvites(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// RemoveInvite godoc
// @Summary      Remove an invite (arena creator only)
// @Tags         Invites
// @Security     BearerAuth
// @Param        id path int true "Invite ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Router       /arena-invites/{id} [delete]
func (ic *InviteController) RemoveInvite(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid invite ID")
		return
	}

	if err := ic.service.RemoveInvite(id, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveInviteByArenaAndUser godoc
// @Summary      Remove an invite by arena and user (arena creator only)
// @Tags         Invites
// @Security     BearerAuth
// @Param        arenaId path int true "Arena ID"
// @Param        userId path int true "User ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Router       /arena-invites/arena/{arenaId}/user/{userId} [delete]
func (ic *InviteController) RemoveInviteByArenaAndUser(c *gin.Context) {
	actorID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	arenaID, err := parseID(c, "arenaId")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		responses.BadRequest(c, "invalid user ID")
		return
	}

	if err := ic.service.RemoveInviteByArenaAndUser(arenaID, userID, actorID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// InviteToArena handles POST /arenas/:id/invites.
func (ic *InviteController) InviteToArena(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	arenaID, err := arena.ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	var req InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if _, err := ic.service.CreateInvite(arenaID, userID, req.UserID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendMessage(c, http.StatusOK, "Invitation sent successfully")
}

// RemoveArenaInvite handles DELETE /arenas/:id/invites.
func (ic *InviteController) RemoveArenaInvite(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	arenaID, err := arena.ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	var req InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if err := ic.service.RemoveInviteByArenaAndUser(arenaID, req.UserID, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendMessage(c, http.StatusOK, "Invitation removed successfully")
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
