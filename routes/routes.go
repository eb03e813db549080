package routes

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CatholicOS/caritas-ai/config"
	"github.com/CatholicOS/caritas-ai/database"
	"github.com/CatholicOS/caritas-ai/internal/agent"
	"github.com/CatholicOS/caritas-ai/internal/event"
	"github.com/CatholicOS/caritas-ai/internal/notification"
	"github.com/CatholicOS/caritas-ai/internal/parish"
	"github.com/CatholicOS/caritas-ai/internal/registration"
	"github.com/CatholicOS/caritas-ai/internal/reports"
	"github.com/CatholicOS/caritas-ai/internal/volunteer"
	"github.com/CatholicOS/caritas-ai/middleware"
	"github.com/CatholicOS/caritas-ai/utils"

	_ "github.com/CatholicOS/caritas-ai/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to CaritasAI - Evangelization Through Service",
			"version": cfg.Version,
			"docs":    "/swagger/index.html",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": cfg.ProjectName})
	})
	r.GET("/health/detailed", func(c *gin.Context) {
		dbStatus := "connected"
		if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "unavailable"
		}
		redisStatus := "disabled"
		if utils.IsRedisEnabled() {
			redisStatus = "connected"
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := utils.RedisClient.Ping(ctx).Err(); err != nil {
				redisStatus = "unavailable"
			}
		}
		kafkaStatus := "disabled"
		if utils.IsKafkaEnabled() {
			kafkaStatus = "configured"
		}
		agentStatus := "disabled"
		if cfg.GeminiAPIKey != "" {
			agentStatus = "enabled"
		}
		c.JSON(200, gin.H{
			"status":   "healthy",
			"service":  cfg.ProjectName,
			"version":  cfg.Version,
			"database": dbStatus,
			"redis":    redisStatus,
			"kafka":    kafkaStatus,
			"agent":    agentStatus,
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())

	// ========== Parishes ==========
	parishRepo := parish.NewRepository(database.DB)
	parishSvc := parish.NewService(parishRepo)
	parishHandler := parish.NewHandler(parishSvc)

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventSvc)

	// ========== Volunteers ==========
	volRepo := volunteer.NewRepository(database.DB)
	volSvc := volunteer.NewService(volRepo)
	volHandler := volunteer.NewHandler(volSvc)

	// ========== Registrations ==========
	regRepo := registration.NewRepository(database.DB)

	// ========== Notifications ==========
	emailSender := notification.NewEmailSender(cfg)
	notifySvc := notification.NewService(cfg, emailSender, regRepo)
	notification.StartKafkaConsumer(notifySvc)

	regSvc := registration.NewService(regRepo, notifySvc)
	regHandler := registration.NewHandler(regSvc)

	// ========== Reports ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsSvc := reports.NewService(reportsRepo)
	reportsHandler := reports.NewHandler(reportsSvc, reports.NewExporter())

	parishGroup := api.Group("/parishes")
	{
		parishGroup.GET("", parishHandler.ListParishes)
		parishGroup.GET("/:id", parishHandler.GetParishByID)
		parishGroup.GET("/:id/events", eventHandler.GetParishEvents)
		parishGroup.GET("/search/:name", parishHandler.SearchParishes)
		parishGroup.GET("/by-state/:state", parishHandler.GetParishesByState)
	}
	api.GET("/states", parishHandler.GetStates)

	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", eventHandler.ListEvents)
		eventGroup.GET("/search", eventHandler.SearchOpportunities)
		eventGroup.GET("/search/:title", eventHandler.SearchEventsByTitle)
		eventGroup.GET("/skills", eventHandler.GetSkills)
		eventGroup.GET("/:id", eventHandler.GetEventByID)
		eventGroup.GET("/:id/registrations", regHandler.ListByEvent)
	}
	api.GET("/skills", eventHandler.GetSkills)

	regGroup := api.Group("/registrations")
	{
		regGroup.POST("", regHandler.Register)
		regGroup.POST("/:id/checkin", regHandler.CheckIn)
		regGroup.POST("/:id/checkout", regHandler.CheckOut)
		regGroup.POST("/:id/feedback", regHandler.SubmitFeedback)
	}
	volGroup := api.Group("/volunteers")
	{
		volGroup.GET("/lookup", volHandler.LookupByEmail)
		volGroup.GET("/:id", volHandler.GetVolunteerByID)
		volGroup.PUT("/:id", volHandler.UpdateProfile)
		volGroup.GET("/:id/registrations", regHandler.ListByVolunteer)
	}

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.GET("/parishes/export", reportsHandler.ExportParishSummaries)
		analyticsGroup.GET("/parishes/:name", reportsHandler.GetParishAnalytics)
	}

	// ========== Chat Agent ==========
	var store agent.ConversationStore
	if utils.IsRedisEnabled() {
		store = agent.NewRedisConversationStore(utils.RedisClient, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	} else {
		log.Println("⚠️ Redis unavailable, using in-memory conversation store")
		store = agent.NewMemoryConversationStore()
	}

	toolbox := &agent.Toolbox{
		Events:        eventSvc,
		Parishes:      parishSvc,
		Registrations: regSvc,
		Analytics:     reportsSvc,
	}

	var agentSvc *agent.Service
	if cfg.GeminiAPIKey != "" {
		svc, err := agent.NewService(context.Background(), cfg, toolbox, store)
		if err != nil {
			log.Printf("⚠️ Chat agent disabled: %v", err)
		} else {
			agentSvc = svc
		}
	}
	agentHandler := agent.NewHandler(agentSvc, eventSvc)

	chatGroup := api.Group("/chat")
	{
		chatGroup.POST("", agentHandler.Chat)
		chatGroup.POST("/reset", agentHandler.Reset)
		chatGroup.GET("/history", agentHandler.History)
	}
}
