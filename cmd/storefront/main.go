package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/asalah03/educate-app-frontend/docs"
	"github.com/asalah03/educate-app-frontend/internal/app"
	"github.com/asalah03/educate-app-frontend/internal/config"
)

// @title Lesson Storefront API
// @version 1.0
// @description Session state API for the lesson storefront single-page UI.
// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
	}
}
