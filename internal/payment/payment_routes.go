package payment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/middleware"
)

func RegisterPaymentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	gateway := NewStripeGateway(appConfig.Stripe.SecretKey, appConfig.Stripe.Currency)
	RegisterPaymentRoutesWithGateway(router, db, appConfig, gateway)
}

// RegisterPaymentRoutesWithGateway lets callers substitute the gateway.
func RegisterPaymentRoutesWithGateway(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, gateway PaymentGateway) {
	repo := NewPaymentRepository(db)
	service := NewPaymentService(repo, arena.NewArenaRepository(db), gateway)
	controller := NewPaymentController(service)

	payments := router.Group("/payments")
	payments.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		payments.POST("/methods", controller.CreateMethod)
		payments.GET("/methods", controller.GetMethods)
		payments.DELETE("/methods/:id", controller.DeleteMethod)

		payments.POST("", controller.CreatePayment)
		payments.GET("/:id", controller.GetPayment)
		payments.GET("/payer", controller.GetPayerPayments)
		payments.GET("/receiver", controller.GetReceiverPayments)

		payments.POST("/create", controller.CreateIntent)
		payments.POST("/verify", controller.VerifyIntent)
	}
}
