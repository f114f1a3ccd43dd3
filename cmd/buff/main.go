package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"tailscale.com/tsnet"

	"github.com/meltforce/buff/internal/app"
	"github.com/meltforce/buff/internal/config"
	"github.com/meltforce/buff/internal/server"
	"github.com/meltforce/buff/internal/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run postgres migrations and exit")
	flag.Parse()

	// .env is optional; environment overrides still apply without one.
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("Buff starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg, *migrateOnly, log)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	if st == nil {
		return // migrate-only
	}
	defer st.Close()

	a := app.New(st, log, app.Options{RPEEnabled: cfg.Engine.RPEEnabled})
	a.Load(ctx)
	log.Info("state loaded", "stats", a.Stats())

	srv := server.New(a, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "local (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// openStore opens the configured backend. For postgres it applies
// migrations first; with migrateOnly it returns (nil, nil) after doing so.
func openStore(ctx context.Context, cfg *config.Config, migrateOnly bool, log *slog.Logger) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		dsn := cfg.Database.DSN()
		if err := store.RunMigrations(dsn, "migrations"); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")
		if migrateOnly {
			log.Info("migrate-only: exiting")
			return nil, nil
		}
		return store.OpenPostgres(ctx, dsn)
	default:
		if migrateOnly {
			log.Info("migrate-only: sqlite schema is ensured on open, exiting")
			return nil, nil
		}
		return store.OpenSQLite(cfg.Storage.Path)
	}
}
