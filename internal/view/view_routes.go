package view

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

func RegisterViewRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewViewRepository(db)
	service := NewViewService(repo, arena.NewArenaRepository(db))
	controller := NewViewController(service)

	views := router.Group("/arena-views")
	views.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		views.POST("/:arenaId", controller.RecordView)
		views.GET("/:id", controller.GetView)
		views.GET("/arena/:arenaId", controller.GetArenaViews)
		views.GET("/user/views", controller.GetUserViews)
		views.DELETE("/:id", controller.DeleteView)
		views.GET("/count/:arenaId", controller.GetViewCount)
	}

	// Nested under /arenas, open to guests. A bearer token, when present,
	// attributes the view to the user.
	nested := router.Group("/arenas/:id/views")
	nested.Use(middleware.OptionalAuth(appConfig.JWT.AccessTokenSecret))
	{
		nested.POST("", controller.RecordArenaView)
		nested.GET("", controller.GetArenaViewsNested)
	}
}
