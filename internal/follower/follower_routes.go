package follower

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/middleware"
	"github.com/SharanSapkota/arena-server/internal/user"
)

func RegisterFollowerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewFollowerRepository(db)
	service := NewFollowerService(repo, user.NewUserRepository(db))
	controller := NewFollowerController(service)

	followers := router.Group("/followers")
	followers.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		followers.POST("/:userId", controller.Follow)
		followers.DELETE("/:userId", controller.Unfollow)
		followers.GET("/followers/:userId", controller.GetFollowers)
		followers.GET("/following/:userId", controller.GetFollowing)
	}
}
