package main

import (
	"context"
	"log"
	"strconv"

	"safex/bot"
	"safex/config"
	"safex/controllers"
	"safex/services"
	"safex/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := services.InitExplainService(cfg); err != nil {
		log.Fatalf("Failed to initialize explanation service: %v", err)
	}

	machine := bot.NewMachine(services.NewExtractor(cfg), services.GenerateExplanation, cfg)
	sessions := bot.NewSessionStore()

	telegram, err := bot.NewTelegramTransport(cfg.Telegram.Token, machine, sessions)
	if err != nil {
		log.Fatalf("Failed to start Telegram transport: %v", err)
	}
	go func() {
		if err := telegram.Run(context.Background()); err != nil && err != context.Canceled {
			log.Fatalf("Telegram transport stopped: %v", err)
		}
	}()

	router := setupRouter(cfg, machine, sessions)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, machine *bot.Machine, sessions *bot.SessionStore) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "sessions": sessions.Len()})
	})

	router.POST("/assess", controllers.NewAssessHandler(cfg))

	// Browser chat endpoint
	chat := websocket.NewChatTransport(machine, sessions)
	router.GET("/ws", chat.Handler)

	return router
}
