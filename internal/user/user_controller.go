package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
	"github.com/SharanSapkota/arena-server/pkg/validator"
)

// UserController handles registration, login, and profile endpoints.
type UserController struct {
	service *UserService
}

func NewUserController(service *UserService) *UserController {
	return &UserController{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with username, email, name parts and password.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        user body RegisterRequest true "Registration details"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /users/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "errors": validator.ParseError(err)})
		return
	}

	resp, err := uc.service.Register(req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with email and password.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Login credentials"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "errors": validator.ParseError(err)})
		return
	}

	resp, err := uc.service.Login(req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} map[string]string
// @Failure      401 {object} responses.ErrorResponse
// @Router       /users/refresh-token [post]
func (uc *UserController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	accessToken, err := uc.service.Refresh(req.RefreshToken)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": accessToken})
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         Users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} UserResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /users/profile [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	profile, err := uc.service.GetProfile(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         Users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile body UpdateProfileRequest true "Fields to update"
// @Success      200 {object} UserResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /users/profile [patch]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	profile, err := uc.service.UpdateProfile(userID, req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary      Delete own account
// @Tags         Users
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} responses.ErrorResponse
// @Router       /users/profile [delete]
func (uc *UserController) DeleteProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	if err := uc.service.DeleteProfile(userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
