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
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aivault.backend/internal/config"
	"aivault.backend/internal/infrastructure/ai"
	"aivault.backend/internal/infrastructure/cache"
	"aivault.backend/internal/infrastructure/jobs"
	"aivault.backend/internal/infrastructure/repositories"
	"aivault.backend/internal/interfaces/http/handlers"
	"aivault.backend/internal/interfaces/http/middleware"
	"aivault.backend/internal/usecases"
	"aivault.backend/pkg/jwt"
	"aivault.backend/pkg/logger"
	"aivault.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newAIClient = func(cfg *ai.Config) (ai.Client, error) {
		return ai.NewOpenAIClient(cfg, logger.GetLogger())
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize AI client; a missing key degrades generation instead of
	// blocking startup
	aiClient, err := newAIClient(&ai.Config{
		Endpoint:    cfg.AI.Endpoint,
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize ai client: %w", err)
	}

	// Initialize directory cache
	directoryCache := cache.NewDirectoryCache(cfg.Cache.DirectoryTTL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	opInfoRepo := repositories.NewOperationalInfoRepository(db)
	metadataRepo := repositories.NewAiMetadataRepository(db)
	feedRepo := repositories.NewJsonLDFeedRepository(db)
	visibilityRepo := repositories.NewVisibilityRepository(db)

	// Initialize usecases
	userUsecase := usecases.NewUserUsecase(userRepo, businessRepo, jwtService)
	businessUsecase := usecases.NewBusinessUsecase(businessRepo, userRepo, serviceRepo, mediaRepo, couponRepo, opInfoRepo, directoryCache)
	serviceUsecase := usecases.NewServiceUsecase(serviceRepo, businessRepo, directoryCache)
	mediaUsecase := usecases.NewMediaUsecase(mediaRepo, businessRepo, directoryCache)
	couponUsecase := usecases.NewCouponUsecase(couponRepo, businessRepo, directoryCache)
	opInfoUsecase := usecases.NewOperationalInfoUsecase(opInfoRepo, businessRepo, directoryCache)
	aiMetadataUsecase := usecases.NewAiMetadataUsecase(metadataRepo, businessRepo, serviceRepo, opInfoRepo, aiClient)
	jsonldUsecase := usecases.NewJsonLDUsecase(feedRepo, businessRepo, serviceRepo, mediaRepo, couponRepo, opInfoRepo, metadataRepo)
	visibilityUsecase := usecases.NewVisibilityUsecase(visibilityRepo, businessRepo, serviceRepo, mediaRepo, feedRepo, aiClient)
	externalAuditUsecase := usecases.NewExternalAuditUsecase(cfg.AI.Timeout)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userUsecase)
	businessHandler := handlers.NewBusinessHandler(businessUsecase)
	serviceHandler := handlers.NewServiceHandler(serviceUsecase)
	mediaHandler := handlers.NewMediaHandler(mediaUsecase)
	couponHandler := handlers.NewCouponHandler(couponUsecase)
	opInfoHandler := handlers.NewOperationalInfoHandler(opInfoUsecase)
	aiMetadataHandler := handlers.NewAiMetadataHandler(aiMetadataUsecase)
	jsonldHandler := handlers.NewJsonLDHandler(jsonldUsecase)
	visibilityHandler := handlers.NewVisibilityHandler(visibilityUsecase, externalAuditUsecase)
	sitemapHandler := handlers.NewSitemapHandler(businessUsecase, cfg.Server.BaseURL)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewCouponExpiryJob(couponRepo, directoryCache, cfg.Jobs.CouponExpiryInterval)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	deps := routeDeps{
		userHandler:       userHandler,
		businessHandler:   businessHandler,
		serviceHandler:    serviceHandler,
		mediaHandler:      mediaHandler,
		couponHandler:     couponHandler,
		opInfoHandler:     opInfoHandler,
		aiMetadataHandler: aiMetadataHandler,
		jsonldHandler:     jsonldHandler,
		visibilityHandler: visibilityHandler,
		sitemapHandler:    sitemapHandler,
		authMiddleware:    authMiddleware,
	}
	registerPublicRoutes(r, deps)
	registerAPIV1Routes(r, deps)

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 AiVault Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
