package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paclead/paclead-backend/internal/handlers"
	"github.com/paclead/paclead-backend/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins    []string
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	UserHandler    *handlers.UserHandler
	ProductHandler *handlers.ProductHandler
	ProfileHandler *handlers.AssistantProfileHandler
	ChatHandler    *handlers.ChatHandler
	WebhookHandler *handlers.WebhookHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/register", cfg.AuthHandler.Register)
	router.POST("/api/login", cfg.AuthHandler.Login)
	router.POST("/webhook", cfg.WebhookHandler.ProcessMessage)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	// Products
	protected.POST("/products", cfg.ProductHandler.Create)
	protected.GET("/products", cfg.ProductHandler.List)
	protected.GET("/products/:id", cfg.ProductHandler.Get)
	protected.PUT("/products/:id", cfg.ProductHandler.Update)
	protected.DELETE("/products/:id", cfg.ProductHandler.Delete)
	// Assistant profile
	protected.GET("/assistant-profile", cfg.ProfileHandler.Get)
	protected.PUT("/assistant-profile", cfg.ProfileHandler.Upsert)
	// Chat
	protected.POST("/chat", cfg.ChatHandler.Chat)

	return router
}
