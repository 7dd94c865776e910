package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	apihttp "equiptrack-backend/internal/api/http"
	"equiptrack-backend/internal/config"
	"equiptrack-backend/internal/logger"
	"equiptrack-backend/internal/repository/postgres"
	"equiptrack-backend/internal/security"
	"equiptrack-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrationsDir := flag.String("migrations", "migrations", "Path to goose migrations directory")
	skipMigrate := flag.Bool("skip-migrate", false, "Skip running database migrations on startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EquipTrack server...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if !*skipMigrate {
		if err := postgres.Migrate(context.Background(), db, *migrationsDir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Database migrations applied")
	}

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	emailService := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.AdminTo,
	)

	authService := service.NewAuthService(cfg.Admin, tokenManager)
	notificationService := service.NewNotificationService(store.NotificationRepository)
	catalogService := service.NewCatalogService(
		store.EquipmentRepository,
		store.InventoryRepository,
		store.NotificationRepository,
	)
	inventoryService := service.NewInventoryService(
		store.InventoryRepository,
		store.EquipmentRepository,
		store.NotificationRepository,
		emailService,
	)
	transactionService := service.NewTransactionService(
		store.TransactionRepository,
		store.EquipmentRepository,
		inventoryService,
	)
	approvalService := service.NewApprovalService(
		store.TransactionRepository,
		store.EquipmentRepository,
		inventoryService,
		store.NotificationRepository,
		emailService,
	)
	penaltyService := service.NewPenaltyService(
		store.PenaltyRepository,
		store.GuidelineRepository,
		store.TransactionRepository,
		store.EquipmentRepository,
		store.NotificationRepository,
		emailService,
		cfg.Penalty,
	)

	handlers := apihttp.NewHandlers(
		authService,
		catalogService,
		inventoryService,
		transactionService,
		approvalService,
		penaltyService,
		notificationService,
	)
	router := apihttp.NewRouter(handlers, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
