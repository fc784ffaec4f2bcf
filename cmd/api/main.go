package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jira-worklog/config"
	_ "jira-worklog/docs" // Swagger docs
	"jira-worklog/internal/app"
	"jira-worklog/internal/httpserver"
)

// @title       Jira Worklog API
// @description List assigned Jira issues, log work against them one by one or in bulk, and look up the spreadsheet time tracker.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jira Worklog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Use cases
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		WorklogUC:       a.Worklog,
		Dates:           a.Dates,
		TimesheetUC:     a.Timesheet,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
