package invite

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

func RegisterInviteRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewInviteRepository(db)
	service := NewInviteService(repo, arena.NewArenaRepository(db))
	controller := NewInviteController(service)

	auth := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	invites := router.Group("/arena-invites")
	invites.Use(auth)
	{
		invites.POST("", controller.CreateInvite)
		invites.GET("/:id", controller.GetInvite)
		invites.GET("/arena/:arenaId", controller.GetArenaInvites)
		invites.GET("/user/invites", controller.GetUserInvites)
		invites.DELETE("/:id", controller.RemoveInvite)
		invites.DELETE("/arena/:arenaId/user/:userId", controller.RemoveInviteByArenaAndUser)
	}

	// Nested under /arenas, creator-gated in the service.
	nested := router.Group("/arenas/:id/invites")
	nested.Use(auth)
	{
		nested.POST("", controller.InviteToArena)
		nested.DELETE("", controller.RemoveArenaInvite)
	}
}
