package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"github.com/rujirapongsn2/ChatLibrary/docs"
	"github.com/rujirapongsn2/ChatLibrary/internal/auth"
	"github.com/rujirapongsn2/ChatLibrary/internal/cache"
	"github.com/rujirapongsn2/ChatLibrary/internal/config"
	"github.com/rujirapongsn2/ChatLibrary/internal/handler"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
	"github.com/rujirapongsn2/ChatLibrary/internal/router"
	"github.com/rujirapongsn2/ChatLibrary/internal/seed"
	"github.com/rujirapongsn2/ChatLibrary/internal/service"
)

// @title ChatLibrary API
// @version 1.0
// @description Library assistant chat API: catalog search, borrowing, and a rule-based assistant, with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize in-memory stores. Storage is process-lifetime only and
	// reseeded below on every start.
	userRepo := repository.NewUserRepository()
	bookRepo := repository.NewBookRepository()
	borrowingRepo := repository.NewBorrowingRepository()
	chatRepo := repository.NewChatRepository()

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	lateFee, err := decimal.NewFromString(cfg.LateFeePerDay)
	if err != nil {
		log.Fatalf("invalid LATE_FEE_PER_DAY %q: %v", cfg.LateFeePerDay, err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	catalogService := service.NewCatalogService(bookRepo)
	lendingService := service.NewLendingService(bookRepo, borrowingRepo, lateFee)
	chatService := service.NewChatService(chatRepo, catalogService, lendingService)

	// Seed the demo data set
	if err := seed.Demo(context.Background(), userRepo, catalogService, borrowingRepo); err != nil {
		log.Fatalf("seed demo data: %v", err)
	}
	log.Println("Seeded demo user, catalog and borrowing")

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(catalogService)
	borrowingHandler := handler.NewBorrowingHandler(chatService, lendingService)
	chatHandler := handler.NewChatHandler(chatService)
	seedHandler := handler.NewSeedHandler(catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		bookHandler,
		borrowingHandler,
		chatHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
