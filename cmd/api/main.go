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

	"mangopay-sync/config"
	httpHandler "mangopay-sync/internal/adapter/http/handler"
	"mangopay-sync/internal/app"
	"mangopay-sync/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("MPS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("processor", cfg.Mangopay.Endpoint()).
		Msg("Starting Mangopay sync API")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set")
	}

	ctx := context.Background()

	a, err := app.Build(ctx, cfg, prometheus.DefaultRegisterer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer a.Close()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		UserSvc:        a.Users,
		DocumentSvc:    a.Documents,
		BankAccountSvc: a.BankAccounts,
		WalletSvc:      a.Wallets,
		PayInSvc:       a.PayIns,
		PayOutSvc:      a.PayOuts,
		TransferSvc:    a.Transfers,
		RefundSvc:      a.Refunds,
		CardSvc:        a.Cards,
		TokenSvc:       a.Tokens,
		RateLimitStore: a.RateLimit,
		RateLimits:     cfg.RateLimit,
		HealthCheckers: a.Health,
		AuditSvc:       a.Audit,
		Metrics:        prometheus.DefaultGatherer,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Lifecycle calls in flight may be waiting on the processor.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Mangopay.Timeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
