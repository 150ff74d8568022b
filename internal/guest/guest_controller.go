package guest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/pkg/responses"
)

type GuestController struct {
	service *GuestService
}

func NewGuestController(service *GuestService) *GuestController {
	return &GuestController{service: service}
}

// CreateGuest godoc
// @Summary      Register a guest session
// @Tags         Guests
// @Accept       json
// @Produce      json
// @Param        guest body CreateGuestRequest false "Client details"
// @Success      201 {object} Guest
// @Router       /guests [post]
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if req.IPAddress == "" {
		req.IPAddress = c.ClientIP()
	}
	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	g, err := gc.service.CreateGuest(req.IPAddress, req.UserAgent)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// GetGuest godoc
// @Summary      Get a guest by id
// @Tags         Guests
// @Produce      json
// @Param        id path int true "Guest ID"
// @Success      200 {object} Guest
// @Failure      404 {object} responses.ErrorResponse
// @Router       /guests/{id} [get]
func (gc *GuestController) GetGuest(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid guest ID")
		return
	}

	g, err := gc.service.GetGuest(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// GetGuestBySession godoc
// @Summary      Get a guest by session id
// @Tags         Guests
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} Guest
// @Failure      404 {object} responses.ErrorResponse
// @Router       /guests/session/{sessionId} [get]
func (gc *GuestController) GetGuestBySession(c *gin.Context) {
	g, err := gc.service.GetGuestBySession(c.Param("sessionId"))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGuest godoc
// @Summary      Delete a guest session
// @Tags         Guests
// @Param        id path int true "Guest ID"
// @Success      204
// @Failure      404 {object} responses.ErrorResponse
// @Router       /guests/{id} [delete]
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid guest ID")
		return
	}

	if err := gc.service.DeleteGuest(id); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
