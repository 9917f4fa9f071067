package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/paclead/paclead-backend/internal/config"
	"github.com/paclead/paclead-backend/internal/db"
	"github.com/paclead/paclead-backend/internal/handlers"
	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/middleware"
	"github.com/paclead/paclead-backend/internal/repos"
	"github.com/paclead/paclead-backend/internal/server"
	"github.com/paclead/paclead-backend/internal/services"
	"github.com/paclead/paclead-backend/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration...")
	cfg, err := config.Load(log)
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Database
	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Database auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(theDB, log)
	userTokenRepo := repos.NewUserTokenRepo(theDB, log)
	productRepo := repos.NewProductRepo(theDB, log)
	profileRepo := repos.NewAssistantProfileRepo(theDB, log)
	callLogRepo := repos.NewChatCallLogRepo(theDB, log)

	// Services
	log.Info("Setting up services...")
	// Strict credential guard: no OPENAI_API_KEY, no process.
	completionClient, err := services.NewOpenAICompletionClient(log, cfg.Chat.Model)
	if err != nil {
		log.Error("Could not init completion client", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(theDB, log, userRepo, userTokenRepo, jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(theDB, log, userRepo)
	productService := services.NewProductService(theDB, log, productRepo)
	profileService := services.NewAssistantProfileService(log, profileRepo)
	chatService := services.NewChatService(log, productRepo, profileRepo, callLogRepo, completionClient, cfg.Chat.CatalogLimit)

	// Handlers
	log.Info("Setting up handlers...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	profileHandler := handlers.NewAssistantProfileHandler(profileService)
	chatHandler := handlers.NewChatHandler(chatService)
	webhookHandler := handlers.NewWebhookHandler(userRepo, chatService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		CORSOrigins:    cfg.Server.CORSOrigins,
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		UserHandler:    userHandler,
		ProductHandler: productHandler,
		ProfileHandler: profileHandler,
		ChatHandler:    chatHandler,
		WebhookHandler: webhookHandler,
	})

	log.Info("Server listening", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
