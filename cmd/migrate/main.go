package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ShoppingList/internal/config"
	"ShoppingList/internal/logger"
	"ShoppingList/internal/repo"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// флаги мигратора регистрируются до config.NewConfig, который вызывает flag.Parse
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|up-to|down-to|validate")
	target := flag.String("to", "", "target version (YYYYMMDDHHMMSS) for -cmd=up-to|down-to")

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = sugar.Sync() }()
	sugar = sugar.With("cmd", *cmd, "schema", cfg.DB.Schema)

	// Commands that do NOT require DB
	if *cmd == "validate" {
		if err := repo.ValidateMigrations(); err != nil {
			fmt.Fprintf(os.Stderr, "migration validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migration validation passed")
		return
	}

	var args []string
	switch *cmd {
	case "up", "down", "status", "version":
	case "up-to", "down-to":
		if *target == "" {
			fmt.Fprintf(os.Stderr, "missing -to for %s\n", *cmd)
			os.Exit(1)
		}
		args = append(args, *target)
	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}

	// Everything else needs DB
	db, err := repo.Connect(ctx, cfg.DB, sugar)
	requireResource(sugar, "database", err)
	defer db.Close()

	sugar.Infow("migrate ready")
	if err := repo.Migrate(ctx, db, cfg.DB.Schema, *cmd, args...); err != nil {
		fmt.Fprintf(os.Stderr, "goose %s failed: %v\n", *cmd, err)
		os.Exit(1)
	}
}

func requireResource(sugar *zap.SugaredLogger, resource string, err error) {
	if err == nil {
		return
	}
	sugar.Errorw(fmt.Sprintf("resource not working: %s", resource), "error", err)
	os.Exit(1)
}
