package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightning-payment-gateway/config"
	httpHandler "lightning-payment-gateway/internal/adapter/http/handler"
	elementsClient "lightning-payment-gateway/internal/adapter/settlement/elements"
	lndClient "lightning-payment-gateway/internal/adapter/settlement/lnd"
	fileStorage "lightning-payment-gateway/internal/adapter/storage/file"
	"lightning-payment-gateway/internal/core/domain"
	"lightning-payment-gateway/internal/core/ports"
	"lightning-payment-gateway/internal/service"
	"lightning-payment-gateway/pkg/logger"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("version", version).
		Int("port", cfg.Server.Port).
		Msg("Starting Lightning Payment Gateway")

	ctx := context.Background()

	// File-backed stores
	paymentStore, err := fileStorage.NewPaymentStore(cfg.Storage.PendingDir(), cfg.Storage.SentDir(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize payment store")
	}
	failedWebhookStore, err := fileStorage.NewFailedWebhookStore(cfg.Storage.WebhookFailureDir(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize webhook failure store")
	}

	// Crash recovery: drop pending files already recorded as sent.
	if cleaned, err := paymentStore.Reconcile(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to reconcile payment partitions")
	} else if cleaned > 0 {
		log.Info().Int("cleaned", cleaned).Msg("Reconciled duplicate pending records")
	}

	// Settlement backends
	classifier := domain.NewDefaultClassifier()
	lnd, err := lndClient.NewClient(cfg.LND, classifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to LND")
	}
	defer lnd.Close()
	elements := elementsClient.NewClient(cfg.Elements, log)

	// Core services
	sigSvc := service.NewHMACSignatureService()
	webhookSvc := service.NewWebhookDispatcher(
		failedWebhookStore,
		sigSvc,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		service.WebhookOptions{
			Timeout:       cfg.Webhook.Timeout,
			RetryAttempts: cfg.Webhook.RetryAttempts,
			RetryDelay:    cfg.Webhook.RetryDelay,
			Server:        domain.ServerInfo{Name: cfg.Server.Name, Version: version},
		},
		log,
	)
	paymentSvc := service.NewPaymentService(lnd, elements, paymentStore, webhookSvc, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		PaymentStore:   paymentStore,
		WebhookSvc:     webhookSvc,
		HealthCheckers: []ports.HealthChecker{lnd, elements},
		APIKey:         cfg.Auth.APIKey,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
