package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"ShoppingList/internal/config"
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// If user passed global --help after flags parsing, show global usage
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, globalUsage(cfg))
			return 0
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, globalUsage(cfg))
		return 2
	}

	name := strings.ToLower(args[0])
	if name == "help" { // shoplist help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, globalUsage(cfg))
			return 0
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return 0
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, globalUsage(cfg))
		return 2
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, globalUsage(cfg))
		return 2
	}

	err := c.Run(ctx, cfg, args[1:])
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	}
	fmt.Fprintf(Out, "%s error: %v\n", name, err)
	// сервер не ответил вовсе: подсказываем, куда клиент стучался
	var urlErr *url.Error
	if errors.As(err, &urlErr) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(Out, "Is the API running at %s? Point the client elsewhere with -server or SERVER_URL.\n", serverLabel(cfg))
	}
	return 1
}

// globalUsage: общая справка плюс адрес API, с которым работает клиент.
func globalUsage(cfg *config.Config) string {
	return FormatGlobalUsage() + fmt.Sprintf("\nServer: %s (-server / SERVER_URL)\n", serverLabel(cfg))
}

func serverLabel(cfg *config.Config) string {
	if cfg == nil || cfg.ServerURL == "" {
		return "not set"
	}
	return cfg.ServerURL
}
