// cmd/credit-api/main.go
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

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"credit-scoring-api/internal/common/config"
	"credit-scoring-api/internal/common/database"
	"credit-scoring-api/internal/common/logger"
	"credit-scoring-api/internal/common/observability"
	"credit-scoring-api/internal/server"
	"credit-scoring-api/internal/store"
)

func main() {
	flags := pflag.NewFlagSet("credit-api", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to a config file (default: configs/config.yaml)")
	flags.String("addr", "", "listen address, overrides server.address")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	if f := flags.Lookup("addr"); f.Changed {
		_ = v.BindPFlag("server.address", f)
	}

	cfg, err := config.LoadWith(v, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog, err := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting service",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}
	defer obs.Shutdown()

	// --- Database ---
	db, err := database.New(cfg.Database)
	if err != nil {
		zapLog.Fatal("database open failed", zap.Error(err))
	}
	defer db.Close()

	applicants := store.NewApplicantStore(db.DB, db.Driver, log)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	err = applicants.Initialize(initCtx)
	cancelInit()
	if err != nil {
		zapLog.Fatal("storage initialization failed", zap.Error(err))
	}
	zapLog.Info("Database ready", zap.String("driver", db.Driver))

	// --- HTTP Server ---
	srv := server.New(cfg, server.Dependencies{
		Store:    applicants,
		Recorder: obs,
		Logger:   log,
	})

	serveErr := make(chan error, 1)
	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serveErr:
		if err != nil {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}
