package verification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
)

type VerificationController struct {
	service *VerificationService
}

func NewVerificationController(service *VerificationService) *VerificationController {
	return &VerificationController{service: service}
}

// CreateVerification godoc
// @Summary      Record an identity verification
// @Tags         Verifications
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        verification body CreateVerificationRequest true "Provider"
// @Success      201 {object} UserVerification
// @Failure      409 {object} responses.ErrorResponse
// @Router       /verifications [post]
func (vc *VerificationController) CreateVerification(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	v, err := vc.service.CreateVerification(userID, req.Provider)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetUserVerifications godoc
// @Summary      List own verifications
// @Tags         Verifications
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} UserVerification
// @Router       /verifications [get]
func (vc *VerificationController) GetUserVerifications(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	verifications, err := vc.service.GetUserVerifications(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, verifications)
}

// GetVerification godoc
// @Summary      Get a verification by id
// @Tags         Verifications
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Verification ID"
// @Success      200 {object} UserVerification
// @Failure      404 {object} responses.ErrorResponse
// @Router       /verifications/{id} [get]
func (vc *VerificationController) GetVerification(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid verification ID")
		return
	}

	v, err := vc.service.GetVerification(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVerification godoc
// @Summary      Remove own verification
// @Tags         Verifications
// @Security     BearerAuth
// @Param        id path int true "Verification ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Router       /verifications/{id} [delete]
func (vc *VerificationController) DeleteVerification(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid verification ID")
		return
	}

	if err := vc.service.DeleteVerification(id, userID); err != nil {
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
