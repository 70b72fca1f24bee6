package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exileum/youtube-comments-to-csv/internal/auth"
	"github.com/exileum/youtube-comments-to-csv/internal/config"
	"github.com/exileum/youtube-comments-to-csv/internal/export"
	"github.com/exileum/youtube-comments-to-csv/internal/server"
	"github.com/exileum/youtube-comments-to-csv/internal/youtube"
)

func main() {
	var (
		addr    = flag.String("addr", "", "listen address (overrides HTTP_ADDR)")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg := config.New()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	exchanger := auth.NewExchanger(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURI).
		SetEndpoint(cfg.Google.AuthURL, cfg.Google.TokenURL)
	client := youtube.NewClient(cfg.YouTube.APIURL).SetTimeout(cfg.YouTube.Timeout)
	job := export.NewJob(client, cfg.Export.RecordLimit, cfg.Export.AllowedChannels)

	srv, err := server.New(exchanger, job, cfg.Export.RecordLimit)
	if err != nil {
		slog.Error("failed to initialise server", "error", err)
		os.Exit(1)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("listening", "addr", cfg.Server.Addr, "limit", cfg.Export.RecordLimit)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
