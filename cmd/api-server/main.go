package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storehub/database"
	"storehub/internal/config"
	"storehub/internal/http-api/handler"
	"storehub/internal/http-api/middleware"
	"storehub/internal/http-api/models"
	"storehub/internal/http-api/repository"
	"storehub/internal/http-api/service"
)

func main() {
	// 1. Load and validate config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// 2. Connect to the database (runs migrations)
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// 3. Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// 4. Services
	authService := service.NewAuthService(userRepo, cfg)
	ratingService := service.NewRatingService(ratingRepo)
	storeService := service.NewStoreService(storeRepo, ratingRepo)
	adminService := service.NewAdminService(userRepo, storeRepo, ratingRepo, cfg)

	// 5. Handlers
	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(storeService, ratingService)
	ownerHandler := handler.NewOwnerHandler(storeService)
	adminHandler := handler.NewAdminHandler(adminService)

	// 6. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authRequired := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst))
	authHandler.RegisterRoutes(authGroup, authRequired)

	storeHandler.RegisterRoutes(&r.RouterGroup, optionalAuth, authRequired)

	ownerGroup := r.Group("/owner", authRequired, middleware.RequireRole(models.RoleStoreOwner))
	ownerHandler.RegisterRoutes(ownerGroup)

	adminGroup := r.Group("/admin", authRequired, middleware.RequireRole(models.RoleAdmin))
	adminHandler.RegisterRoutes(adminGroup)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
