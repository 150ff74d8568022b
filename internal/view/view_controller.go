package view

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
)

type ViewController struct {
	service *ViewService
}

func NewViewController(service *ViewService) *ViewController {
	return &ViewController{service: service}
}

type recordViewRequest struct {
	GuestID *uint `json:"guestId"`
}

// RecordView godoc
// @Summary      Record an arena view for the authenticated user
// @Tags         ArenaViews
// @Security     BearerAuth
// @Produce      json
// @Param        arenaId path int true "Arena ID"
// @Success      201 {object} ArenaView
// @Failure      404 {object} responses.ErrorResponse
// @Router       /arena-views/{arenaId} [post]
func (vc *ViewController) RecordView(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	arenaID, err := parseID(c, "arenaId")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	v, err := vc.service.RecordView(arenaID, &userID, nil, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// RecordArenaView handles POST /arenas/:id/views (public). A logged-in user
// is recorded as the viewer; otherwise an optional guest id from the body is
// attached.
func (vc *ViewController) RecordArenaView(c *gin.Context) {
	arenaID, err := arena.ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	var req recordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var viewerID *uint
	if userID, err := common.GetUserIDFromContext(c); err == nil {
		viewerID = &userID
	}

	v, err := vc.service.RecordView(arenaID, viewerID, req.GuestID, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetArenaViewsNested handles GET /arenas/:id/views (public).
func (vc *ViewController) GetArenaViewsNested(c *gin.Context) {
	arenaID, err := arena.ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	views, err := vc.service.GetArenaViews(arenaID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetView godoc
// @Summary      Get an arena view by id
// @Tags         ArenaViews
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "View ID"
// @Success      200 {object} ArenaView
// @Failure      404 {object} responses.ErrorResponse
// @Router       /arena-views/{id} [get]
func (vc *ViewController) GetView(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid view ID")
		return
	}

	v, err := vc.service.GetView(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GetArenaViews godoc
// @Summary      List views for an arena
// @Tags         ArenaViews
// @Security     BearerAuth
// @Produce      json
// @Param        arenaId path int true "Arena ID"
// @Success      200 {array} ArenaView
// @Router       /arena-views/arena/{arenaId} [get]
func (vc *ViewController) GetArenaViews(c *gin.Context) {
	arenaID, err := parseID(c, "arenaId")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	views, err := vc.service.GetArenaViews(arenaID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetUserViews godoc
// @Summary      List views by the authenticated user
// @Tags         ArenaViews
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ArenaView
// @Router       /arena-views/user/views [get]
func (vc *ViewController) GetUserViews(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	views, err := vc.service.GetUserViews(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// DeleteView godoc
// @Summary      Remove own arena view
// @Tags         ArenaViews
// @Security     BearerAuth
// @Param        id path int true "View ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Router       /arena-views/{id} [delete]
func (vc *ViewController) DeleteView(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid view ID")
		return
	}

	if err := vc.service.DeleteView(id, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetViewCount godoc
// @Summary      Count views for an arena
// @Tags         ArenaViews
// @Security     BearerAuth
// @Produce      json
// @Param        arenaId path int true "Arena ID"
// @Success      200 {object} map[string]int64
// @Router       /arena-views/count/{arenaId} [get]
func (vc *ViewController) GetViewCount(c *gin.Context) {
	arenaID, err := parseID(c, "arenaId")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	count, err := vc.service.GetViewCount(arenaID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
