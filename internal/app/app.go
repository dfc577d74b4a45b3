package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asalah03/educate-app-frontend/internal/backend"
	"github.com/asalah03/educate-app-frontend/internal/config"
	"github.com/asalah03/educate-app-frontend/internal/storefront"
	httpgin "github.com/asalah03/educate-app-frontend/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	ctrl       *storefront.Controller
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	api := backend.New(cfg.API.BaseURL)
	ctrl := storefront.New(api, cfg.API.BaseURL, logger)

	// Initialize Gin router
	router := httpgin.NewRouter(ctrl, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		ctrl:   ctrl,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The catalog loads once at startup. A failed load is surfaced, not
	// retried; the storefront starts empty and the UI can trigger a
	// refresh explicitly.
	if err := a.ctrl.LoadCatalog(ctx); err != nil {
		a.logger.Error("initial catalog load failed", "error", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
