package arena

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

// RegisterArenaRoutes mounts arena CRUD. Nested sub-resources
// (/arenas/:id/chats, /comments, /views, /invites) are mounted by their own
// packages against the same router group.
func RegisterArenaRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewArenaRepository(db)
	service := NewArenaService(repo)
	controller := NewArenaController(service)

	public := router.Group("/arenas")
	{
		public.GET("", controller.GetAllArenas)
		public.GET("/:id", controller.GetArena)
	}

	protected := router.Group("/arenas")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		protected.POST("", controller.CreateArena)
		protected.PATCH("/:id", controller.UpdateArena)
		protected.DELETE("/:id", controller.DeleteArena)
	}
}
