package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gamehub-backend/internal/config"
	"gamehub-backend/internal/handlers"
	"gamehub-backend/internal/middleware"
	"gamehub-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var store services.Store
	switch cfg.Store {
	case "redis":
		store, err = services.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	default:
		store = services.NewMemoryStore()
	}
	defer store.Close()

	jwtService := services.NewJWTService(cfg)

	userService := services.NewUserService(store)
	walletService := services.NewWalletService(store)

	engine := services.NewGameEngine(cfg.ClockStart)
	if err := engine.OpenGame(); err != nil {
		log.Fatalf("Failed to open game: %v", err)
	}

	gameAPI := services.NewGameAPI(userService, walletService, engine, cfg.SignupBonus, cfg.EntryFee)

	wsHandler := handlers.NewWebSocketHandler(engine)
	engine.SetBroadcaster(wsHandler)

	go func() {
		ticker := time.NewTicker(cfg.ClockInterval)
		defer ticker.Stop()

		for range ticker.C {
			engine.AdvanceClock()
		}
	}()

	userHandler := handlers.NewUserHandler(gameAPI, userService, walletService, jwtService)
	gameHandler := handlers.NewGameHandler(gameAPI, walletService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/onboard", userHandler.Onboard)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(store))
	{
		protected.GET("/me", userHandler.GetCurrentUser)

		protected.GET("/ws", wsHandler.HandleWebSocket)

		games := protected.Group("/games")
		{
			games.POST("/entries", gameHandler.SubmitEntry)
			games.GET("/snapshot", gameHandler.GetSnapshot)
			games.GET("/report", gameHandler.GetReport)
		}

		wallet := protected.Group("/wallet")
		{
			wallet.GET("/balance", gameHandler.GetBalance)
			wallet.GET("/transactions", gameHandler.GetTransactions)
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
