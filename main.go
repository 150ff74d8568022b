package main

import (
	"log"

	"github.com/SharanSapkota/arena-server/config"
	_ "github.com/SharanSapkota/arena-server/docs"
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
	"github.com/SharanSapkota/arena-server/internal/worker"
	"github.com/SharanSapkota/arena-server/routes"
)

// @title Arena Server API
// @version 1.0
// @description Social arena platform with chats, invites and entry-fee payments.
// @host localhost:3000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&arena.Arena{}, &arena.ArenaParticipant{},
		&invite.ArenaInvite{},
		&chat.Chat{}, &chat.ChatLike{},
		&comment.ChatComment{}, &comment.ArenaComment{},
		&follower.Follower{},
		&guest.Guest{},
		&view.ArenaView{},
		&verification.UserVerification{},
		&payment.PaymentMethod{}, &payment.Payment{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	w, err := worker.New(payment.NewPaymentRepository(config.DB), guest.NewGuestRepository(config.DB))
	if err != nil {
		log.Fatalf("Failed to build worker: %v", err)
	}
	if err := w.Start(); err != nil {
		log.Fatalf("Failed to start worker: %v", err)
	}
	defer w.Stop()

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
