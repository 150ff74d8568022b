package guest

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterGuestRoutes mounts the public guest-session endpoints.
func RegisterGuestRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewGuestRepository(db)
	service := NewGuestService(repo)
	controller := NewGuestController(service)

	guests := router.Group("/guests")
	{
		guests.POST("", controller.CreateGuest)
		guests.GET("/:id", controller.GetGuest)
		guests.GET("/session/:sessionId", controller.GetGuestBySession)
		guests.DELETE("/:id", controller.DeleteGuest)
	}
}
