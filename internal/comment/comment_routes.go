package comment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/chat"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

func RegisterCommentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewCommentRepository(db)
	service := NewCommentService(repo, chat.NewChatRepository(db), arena.NewArenaRepository(db))
	controller := NewCommentController(service)

	auth := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	comments := router.Group("/comments")
	comments.Use(auth)
	{
		comments.POST("", controller.CreateComment)
		comments.GET("/:id", controller.GetComment)
		comments.GET("/chat/:chatId", controller.GetChatComments)
		comments.GET("/user/comments", controller.GetUserComments)
		comments.PATCH("/:id", controller.UpdateComment)
		comments.DELETE("/:id", controller.DeleteComment)
		comments.GET("/count/:chatId", controller.GetCommentCount)
	}

	// Nested under /arenas: reads are public, posting requires auth.
	nested := router.Group("/arenas/:id/comments")
	{
		nested.GET("", controller.GetArenaComments)
		nested.POST("", auth, controller.CreateArenaComment)
	}
}
