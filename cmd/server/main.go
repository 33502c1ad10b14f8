package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/condoportal/backend/internal/config"
	"github.com/condoportal/backend/internal/logging"
	"github.com/condoportal/backend/internal/metrics"
	"github.com/condoportal/backend/internal/model"
	"github.com/condoportal/backend/internal/repository"
	"github.com/condoportal/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO", "json")
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	maintenanceRepo := repository.NewMemoryMaintenanceRepository(model.SeedMaintenance())
	metrics.ObserveMaintenanceItems(maintenanceRepo.Len)

	maintenanceService := service.NewMaintenanceService(maintenanceRepo,
		service.WithLocation(cfg.Location),
		service.WithLogger(slog.Default()),
	)
	svcs := services{
		contact:     service.NewContactService(slog.Default()),
		maintenance: maintenanceService,
	}

	router, cleanup := newRouter(cfg, svcs)
	defer cleanup()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"frontend_url", cfg.FrontendURL,
			"timezone", cfg.Location.String(),
			"metrics", cfg.MetricsEnabled,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logging.Fatal("server error", "error", err)
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
