package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/tarot-deck/internal/adapters/decks"
	httpadapter "github.com/randomtoy/tarot-deck/internal/adapters/http"
	"github.com/randomtoy/tarot-deck/internal/app"
	"github.com/randomtoy/tarot-deck/internal/config"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	source := decks.NewDirStore(cfg.CardsDir, cfg.CardExt, logger)
	svc, err := app.NewReadingService(ctx, source, stdRNG{}, logger)
	if err != nil {
		logger.Error("failed to build deck", "dir", cfg.CardsDir, "error", err)
		os.Exit(1)
	}
	if cfg.DeckSeed != nil {
		svc.Reset(ctx, cfg.DeckSeed)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
