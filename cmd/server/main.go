package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/staynest/service-stay/internal/application"
	"github.com/staynest/service-stay/internal/config"
	"github.com/staynest/service-stay/internal/domain/identity"
	stayEvents "github.com/staynest/service-stay/internal/events"
	"github.com/staynest/service-stay/internal/handler"
	"github.com/staynest/service-stay/internal/pkg/auth"
	"github.com/staynest/service-stay/internal/pkg/database"
	"github.com/staynest/service-stay/internal/pkg/health"
	"github.com/staynest/service-stay/internal/pkg/kafka"
	"github.com/staynest/service-stay/internal/pkg/logger"
	"github.com/staynest/service-stay/internal/pkg/middleware"
	"github.com/staynest/service-stay/internal/repository"
)

const serviceName = "service-stay"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("backend", cfg.BackendDriver),
	)

	// Initialize backend gateway
	var (
		backend repository.Gateway
		pinger  health.Pinger
	)
	switch cfg.BackendDriver {
	case config.DriverMemory:
		mem := repository.NewMemoryGateway()
		for _, f := range repository.DemoListings() {
			if _, err := mem.CreateListing(context.Background(), f); err != nil {
				log.Fatal("failed to seed listings", zap.Error(err))
			}
		}
		backend = mem
		log.Info("using in-memory backend with demo listings")

	default:
		dbConfig := database.PostgresConfig{
			Host:     cfg.DBConfig.Host,
			Port:     cfg.DBConfig.Port,
			User:     cfg.DBConfig.User,
			Password: cfg.DBConfig.Password,
			DBName:   cfg.DBConfig.DBName,
			SSLMode:  cfg.DBConfig.SSLMode,
		}
		db, err := database.Connect(dbConfig, log)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}

		// Run database migrations
		if cfg.AppEnv == "development" {
			if err := db.AutoMigrate(repository.Models()...); err != nil {
				log.Fatal("failed to run auto-migration", zap.Error(err))
			}
			log.Info("database migration completed (dev auto-migrate)")
		} else {
			if err := database.RunMigrations(dbConfig.DatabaseURL(), "migrations", log); err != nil {
				log.Fatal("failed to run migrations", zap.Error(err))
			}
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("failed to access sql.DB", zap.Error(err))
		}
		pinger = sqlDB
		backend = repository.NewGormGateway(db)
	}

	// Initialize JWT verifier
	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, 15*time.Minute)

	// Initialize Kafka producer
	var publisher application.EventPublisher
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = kafkaProducer.Close() }()
		publisher = kafkaProducer
	}

	// Initialize application services
	policy := identity.NewAdminPolicy(cfg.AdminEmail)
	listingService := application.NewListingService(backend, policy, publisher, log)
	bookingService := application.NewBookingService(backend, policy, publisher, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start booking audit consumer
	if cfg.KafkaConfig.AuditEnabled && len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.GroupPrefix + serviceName + "-audit"
		auditLogger := stayEvents.NewBookingEventLogger(cfg.KafkaConfig.Brokers, groupID, log)
		defer func() { _ = auditLogger.Close() }()

		go func() {
			log.Info("starting booking audit consumer")
			if err := auditLogger.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("booking audit consumer error", zap.Error(err))
			}
		}()
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	health.NewHandler(pinger, serviceName).RegisterRoutes(router)

	// Register routes
	handler.NewListingHandler(listingService).RegisterRoutes(&router.RouterGroup)
	handler.NewBookingHandler(bookingService).RegisterRoutes(&router.RouterGroup, jwtManager)
	handler.NewAdminHandler(listingService, bookingService).RegisterRoutes(&router.RouterGroup, jwtManager, policy)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	// Cancel the consumer context
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
