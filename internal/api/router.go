package api

import (
	"os"
	"path/filepath"

	"budgetboard/docs"
	"budgetboard/internal/api/handlers"
	"budgetboard/pkg/config"
	"budgetboard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	serverCfg config.ServerConfig,
	dashboardHandler *handlers.DashboardHandler,
	feedbackHandler *handlers.FeedbackHandler,
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestID())
	app.Use(logger.New())

	// Swagger - importing the docs package registers the documentation through init()
	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Static files (dashboard page)
	webStaticPath := findWebStaticPath(appLogger)
	if webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
	} else {
		appLogger.Warn("Web static directory not found, static files will not be served")
	}

	// Serve index.html for root path
	app.Get("/", func(c *fiber.Ctx) error {
		indexPath := filepath.Join(webStaticPath, "index.html")
		if webStaticPath == "" || !fileExists(indexPath) {
			paths := []string{
				"./web/static/index.html",
				"web/static/index.html",
				"../web/static/index.html",
				"../../web/static/index.html",
			}
			for _, path := range paths {
				if fileExists(path) {
					return c.SendFile(path)
				}
			}
			return c.Status(404).SendString("Web interface not found. Please ensure web/static/index.html exists.")
		}
		return c.SendFile(indexPath)
	})

	app.Get("/healthz", healthHandler.Health)

	// API routes
	api := app.Group("/api/v1")

	dashboard := api.Group("/dashboard")
	dashboard.Get("", dashboardHandler.GetDashboard)
	dashboard.Get("/filters", dashboardHandler.GetFilters)

	feedback := api.Group("/feedback")
	feedback.Post("", feedbackHandler.SubmitFeedback)
	feedback.Get("", feedbackHandler.ListFeedback)
	feedback.Get("/export", feedbackHandler.ExportFeedback)

	api.Post("/chat", chatHandler.Ask)

	return app
}

// findWebStaticPath finds the path to the web/static directory
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			logger.Debug("Found web static path", zap.String("path", path))
			return path
		}
	}

	return ""
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
