package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CatholicOS/caritas-ai/config"
	"github.com/CatholicOS/caritas-ai/database"
	"github.com/CatholicOS/caritas-ai/internal/event"
	"github.com/CatholicOS/caritas-ai/internal/parish"
	"github.com/CatholicOS/caritas-ai/internal/registration"
	"github.com/CatholicOS/caritas-ai/internal/volunteer"
	"github.com/CatholicOS/caritas-ai/routes"
	"github.com/CatholicOS/caritas-ai/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis (conversation memory). The agent falls back to an
	// in-memory store when Redis is down, so this is non-fatal.
	if err := utils.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Printf("⚠️ Redis init failed: %v", err)
	}

	// Init Kafka producer (async registration confirmations)
	utils.InitializeKafka(cfg.KafkaBrokers, cfg.KafkaRegistrationTopic)
	defer utils.CloseKafka()

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&parish.Parish{},
		&event.Event{},
		&volunteer.Volunteer{},
		&registration.Registration{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	fmt.Printf("🚀 %s starting on port %s\n", cfg.ProjectName, cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
