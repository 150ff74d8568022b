package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewUserRepository(db)
	service := NewUserService(repo, appConfig)
	controller := NewUserController(service)

	// Public routes
	public := router.Group("/users")
	{
		public.POST("/register", controller.Register)
		public.POST("/login", controller.Login)
		public.POST("/refresh-token", controller.RefreshToken)
	}

	// Protected routes
	protected := router.Group("/users")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		protected.GET("/profile", controller.GetProfile)
		protected.PATCH("/profile", controller.UpdateProfile)
		protected.DELETE("/profile", controller.DeleteProfile)
	}
}
