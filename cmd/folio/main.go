package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/logging"
	"github.com/foliokit/folio/internal/sanitize"
	"github.com/foliokit/folio/internal/server"
	"github.com/foliokit/folio/internal/store"
)

// Set by linker via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Check for --version before full flag parsing
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" {
			fmt.Printf("folio %s (%s) built %s\n", version, commit, date)
			os.Exit(0)
		}
	}

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}

	logging.Setup()

	if cfg.AdminToken == "" {
		slog.Warn("no admin token configured, management API is disabled")
	}

	slog.Info("config loaded",
		"listen", cfg.Listen,
		"data_dir", cfg.DataDir,
		"max_upload_size", cfg.MaxUploadSize,
		"cache_ttl", cfg.CacheTTL.String(),
		"cache_max_size", cfg.CacheMaxSize,
		"default_theme", cfg.DefaultTheme,
	)

	st, err := store.Open(cfg.DataDir, sanitize.New())
	if err != nil {
		slog.Error("open store failed", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, version, st)

	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: srv.Handler(),
	}

	go func() {
		slog.Info("server started", "listen", cfg.Listen, "version", version)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("shutdown complete")
}
