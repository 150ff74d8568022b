package verification

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

func RegisterVerificationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewVerificationRepository(db)
	service := NewVerificationService(repo)
	controller := NewVerificationController(service)

	verifications := router.Group("/verifications")
	verifications.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		verifications.POST("", controller.CreateVerification)
		verifications.GET("", controller.GetUserVerifications)
		verifications.GET("/:id", controller.GetVerification)
		verifications.DELETE("/:id", controller.DeleteVerification)
	}
}
