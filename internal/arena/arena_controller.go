package arena

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
	"github.com/SharanSapkota/arena-server/pkg/validator"
)

// ArenaController handles API requests for arenas.
type ArenaController struct {
	service *ArenaService
}

func NewArenaController(service *ArenaService) *ArenaController {
	return &ArenaController{service: service}
}

// CreateArena godoc
// @Summary      Create an arena
// @Tags         Arenas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        arena body CreateArenaRequest true "Arena details"
// @Success      201 {object} ArenaResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /arenas [post]
func (ac *ArenaController) CreateArena(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "errors": validator.ParseError(err)})
		return
	}

	a, err := ac.service.CreateArena(userID, req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, FilterArenaRecord(a, nil))
}

// GetArena godoc
// @Summary      Get an arena by id
// @Tags         Arenas
// @Produce      json
// @Param        id path int true "Arena ID"
// @Success      200 {object} ArenaResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /arenas/{id} [get]
func (ac *ArenaController) GetArena(c *gin.Context) {
	id, err := ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	a, err := ac.service.GetArena(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	participants, err := ac.service.GetParticipants(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, FilterArenaRecord(a, participants))
}

// GetAllArenas godoc
// @Summary      List arenas
// @Tags         Arenas
// @Produce      json
// @Success      200 {array} ArenaResponse
// @Router       /arenas [get]
func (ac *ArenaController) GetAllArenas(c *gin.Context) {
	arenas, err := ac.service.GetAllArenas()
	if err != nil {
		responses.FromError(c, err)
		return
	}

	out := make([]ArenaResponse, 0, len(arenas))
	for i := range arenas {
		out = append(out, FilterArenaRecord(&arenas[i], nil))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateArena godoc
// @Summary      Update an arena (creator only)
// @Tags         Arenas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Arena ID"
// @Param        arena body UpdateArenaRequest true "Fields to update"
// @Success      200 {object} ArenaResponse
// @Failure      403 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /arenas/{id} [patch]
func (ac *ArenaController) UpdateArena(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	var req UpdateArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	a, err := ac.service.UpdateArena(id, userID, req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, FilterArenaRecord(a, nil))
}

// DeleteArena godoc
// @Summary      Delete an arena (creator only)
// @Tags         Arenas
// @Security     BearerAuth
// @Param        id path int true "Arena ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /arenas/{id} [delete]
func (ac *ArenaController) DeleteArena(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	if err := ac.service.DeleteArena(id, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ParseArenaID reads a uint path parameter. Shared by the nested arena
// sub-resource controllers.
func ParseArenaID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
