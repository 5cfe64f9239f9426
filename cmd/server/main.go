package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"brand-connector.backend/internal/config"
	"brand-connector.backend/internal/infrastructure/datasources/database"
	"brand-connector.backend/internal/infrastructure/repositories"
	"brand-connector.backend/internal/interfaces/http/handlers"
	"brand-connector.backend/internal/interfaces/http/middleware"
	"brand-connector.backend/internal/usecases"
	"brand-connector.backend/pkg/jwt"
	"brand-connector.backend/pkg/logger"
	"brand-connector.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = database.NewConnection
	migrateDB  = repositories.AutoMigrate
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; without it idempotency keys are ignored
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info(ctx, "Redis initialized")
	} else {
		logger.Warn(ctx, "REDIS_URL not set, idempotency replay disabled")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to database", zap.String("driver", cfg.Database.Driver))

	if err := migrateDB(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.AccessExpiry)
	if err != nil {
		return fmt.Errorf("failed to initialize jwt service: %w", err)
	}

	r := buildRouter(cfg, db, jwtService)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server")
		logger.Sync()
		os.Exit(0)
	}()

	logger.Info(ctx, "Brand Connector backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "/api/v1"),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func buildRouter(cfg *config.Config, db *gorm.DB, jwtService *jwt.JWTService) *gin.Engine {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	influencerRepo := repositories.NewInfluencerRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	brandUsecase := usecases.NewBrandUsecase(brandRepo, userRepo, uow)
	influencerUsecase := usecases.NewInfluencerUsecase(influencerRepo, userRepo, uow)

	authHandler := handlers.NewAuthHandler(authUsecase)
	brandHandler := handlers.NewBrandHandler(brandUsecase)
	influencerHandler := handlers.NewInfluencerHandler(influencerUsecase)

	metrics := middleware.NewMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(metrics.Middleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", metrics.Handler())
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		brandHandler:      brandHandler,
		influencerHandler: influencerHandler,
		authMiddleware:    middleware.AuthMiddleware(authUsecase),
		authRateLimit:     middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	})

	for _, route := range r.Routes() {
		logger.Debug(context.Background(), "Registered route",
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}
	return r
}
