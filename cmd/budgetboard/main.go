package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"budgetboard/internal/api"
	"budgetboard/internal/api/handlers"
	"budgetboard/internal/models"
	"budgetboard/internal/repository"
	"budgetboard/internal/service"
	"budgetboard/pkg/config"
	"budgetboard/pkg/logger"

	"go.uber.org/zap"
)

// @title BudgetBoard API
// @version 1.0
// @description Dashboard service for departmental budget tracking and overrun detection

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting BudgetBoard service")

	// Load the transaction dataset; the server is useless without it
	datasetRepo, err := repository.NewDatasetRepository(cfg.Dataset.Path, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load dataset", zap.Error(err))
	}

	feedbackRepo := repository.NewFeedbackRepository(cfg.Feedback.Path, appLogger)

	converter := models.Converter{
		Primary:   models.Currency{Code: cfg.Currency.PrimaryCode, Symbol: cfg.Currency.PrimarySymbol},
		Secondary: models.Currency{Code: cfg.Currency.SecondaryCode, Symbol: cfg.Currency.SecondarySymbol},
		Rate:      cfg.Currency.Rate,
	}

	// Initialize services
	dashboardService := service.NewDashboardService(datasetRepo, converter, appLogger)

	feedbackService, err := service.NewFeedbackService(feedbackRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize feedback service", zap.Error(err))
	}

	chatService := service.NewChatService(dashboardService, cfg.Chat.IntentsPath, appLogger)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appLogger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	healthHandler := handlers.NewHealthHandler(datasetRepo)

	// Setup router
	app := api.SetupRouter(cfg.Server, dashboardHandler, feedbackHandler, chatHandler, healthHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
