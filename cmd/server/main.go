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

	"ShoppingList/internal/config"
	"ShoppingList/internal/handlers"
	"ShoppingList/internal/logger"
	"ShoppingList/internal/repo"
	"ShoppingList/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Version {
		fmt.Printf("Shopping List API\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	//сброс буфера логгера
	defer func() { _ = sugar.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := repo.Unconfigured()
	if cfg.DB.URL == "" {
		sugar.Warnw("DATABASE_URL is not set, only health endpoints will work")
	} else {
		db, err = repo.Connect(ctx, cfg.DB, sugar)
		if err != nil {
			sugar.Fatalw("failed to initialize database", "error", err)
		}
		if cfg.AutoMigrate {
			if err := repo.Migrate(ctx, db, cfg.DB.Schema, "up"); err != nil {
				sugar.Fatalw("failed to apply migrations", "error", err)
			}
			sugar.Infow("migrations applied", "schema", cfg.DB.Schema)
		}
	}
	defer db.Close()

	storeService := service.NewStoreService(db, sugar)
	itemService := service.NewItemService(db, sugar)

	h := handlers.NewHandler(storeService, itemService, db, sugar)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"schema", cfg.DB.Schema,
		"database_configured", db.Configured(),
		"version", version,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Graceful shutdown failed", "error", err)
		}
	}
}
