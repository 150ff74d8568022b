package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/chat"
	"github.com/SharanSapkota/arena-server/internal/comment"
	"github.com/SharanSapkota/arena-server/internal/follower"
	"github.com/SharanSapkota/arena-server/internal/guest"
	"github.com/SharanSapkota/arena-server/internal/invite"
	"github.com/SharanSapkota/arena-server/internal/payment"
	"github.com/SharanSapkota/arena-server/internal/user"
	"github.com/SharanSapkota/arena-server/internal/verification"
	"github.com/SharanSapkota/arena-server/internal/view"
	"github.com/SharanSapkota/arena-server/pkg/realtime"
)

// SetupRoutes builds the gin engine with every API group mounted.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if appConfig.App.ClientURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.App.ClientURL}
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	hub := realtime.NewHub()
	r.GET("/ws", hub.HandleWS)

	api := r.Group("/api")
	{
		user.RegisterUserRoutes(api, db, appConfig)
		arena.RegisterArenaRoutes(api, db, appConfig)
		invite.RegisterInviteRoutes(api, db, appConfig)
		chat.RegisterChatRoutes(api, db, appConfig)
		comment.RegisterCommentRoutes(api, db, appConfig)
		follower.RegisterFollowerRoutes(api, db, appConfig)
		guest.RegisterGuestRoutes(api, db)
		view.RegisterViewRoutes(api, db, appConfig)
		verification.RegisterVerificationRoutes(api, db, appConfig)
		payment.RegisterPaymentRoutes(api, db, appConfig)
	}

	return r
}
