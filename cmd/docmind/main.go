package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docmindhq/docmind/internal/api"
	"github.com/docmindhq/docmind/internal/config"
	"github.com/docmindhq/docmind/internal/gateway"
	"github.com/docmindhq/docmind/internal/repository"
	"github.com/docmindhq/docmind/internal/service"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (admin records only - transcripts stay in memory)
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	integrationRepo := repository.NewIntegrationRepository(db)

	// Gateway client to the automation backend (all retrieval and answer
	// generation happens there)
	gw := gateway.NewClient(cfg.Gateway, logger)

	// Initialize services
	manager := service.NewConversationManager(cfg, gw, logger)

	adminService := service.NewAdminService(
		orgRepo,
		memberRepo,
		integrationRepo,
	)

	syncService := service.NewSyncService(
		integrationRepo,
		gw,
		logger,
	)

	// Setup router
	router := api.SetupRouter(manager, adminService, syncService, api.RouterConfig{
		APIKey:       cfg.Admin.APIKey,
		AllowOrigins: []string{"*"},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting DocMind server",
			zap.String("address", cfg.Address()),
			zap.String("gateway", cfg.Gateway.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
