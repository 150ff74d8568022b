package chat

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

func RegisterChatRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewChatRepository(db)
	service := NewChatService(repo, arena.NewArenaRepository(db))
	controller := NewChatController(service)

	auth := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	chats := router.Group("/chats")
	chats.Use(auth)
	{
		chats.POST("", controller.CreateChat)
		chats.GET("/:id", controller.GetChat)
		chats.GET("/arena/:arenaId", controller.GetArenaChats)
		chats.GET("/user/chats", controller.GetUserChats)
		chats.PATCH("/:id", controller.UpdateChat)
		chats.DELETE("/:id", controller.DeleteChat)
	}

	likes := router.Group("/chat-likes")
	likes.Use(auth)
	{
		likes.POST("/:chatId", controller.LikeChat)
		likes.GET("/:id", controller.GetLike)
		likes.GET("/chat/:chatId", controller.GetChatLikes)
		likes.GET("/user/likes", controller.GetUserLikes)
		likes.DELETE("/:chatId", controller.UnlikeChat)
		likes.GET("/count/:chatId", controller.GetLikeCount)
	}

	// Nested under /arenas: reads are public, posting requires auth.
	nested := router.Group("/arenas/:id/chats")
	{
		nested.GET("", controller.GetArenaChatsNested)
		nested.POST("", auth, controller.CreateArenaChat)
	}
}
