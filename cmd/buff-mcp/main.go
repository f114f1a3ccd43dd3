// Command buff-mcp serves the workout log over the Model Context Protocol
// on stdio, against the same store as the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/buff/internal/app"
	"github.com/meltforce/buff/internal/config"
	"github.com/meltforce/buff/internal/mcp"
	"github.com/meltforce/buff/internal/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	// stdout carries the MCP transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	a := app.New(st, log, app.Options{RPEEnabled: cfg.Engine.RPEEnabled})
	a.Load(ctx)

	s := mcp.New(a, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		dsn := cfg.Database.DSN()
		if err := store.RunMigrations(dsn, "migrations"); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		return store.OpenPostgres(ctx, dsn)
	default:
		return store.OpenSQLite(cfg.Storage.Path)
	}
}
