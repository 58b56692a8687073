package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"shenfen/internal/avatar"
	"shenfen/internal/avatar/aimodel"
	avatarMetrics "shenfen/internal/avatar/metrics"
	"shenfen/internal/avatar/normalize"
	"shenfen/internal/avatar/procedural"
	"shenfen/internal/avatar/silhouette"
	"shenfen/internal/avatar/tracer"
	"shenfen/internal/card"
	"shenfen/internal/identity"
	identityMetrics "shenfen/internal/identity/metrics"
	"shenfen/internal/platform/config"
	"shenfen/internal/platform/health"
	"shenfen/internal/platform/httpserver"
	"shenfen/internal/platform/logger"
	"shenfen/internal/platform/metrics"
	"shenfen/internal/refdata"
	httptransport "shenfen/internal/transport/http"
	"shenfen/pkg/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	config.LoadDotEnv()
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing shenfen",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"avatar_ai", cfg.AvatarBaseURL != "",
	)

	ref := refdata.Default()

	avatarOpts := []avatar.Option{
		avatar.WithNormalizer(normalize.New()),
		avatar.WithLogger(log),
		avatar.WithMetrics(avatarMetrics.New()),
		avatar.WithTracer(tracer.NewOTel(tracer.WithOTelTracer(otel.Tracer("shenfen/avatar")))),
	}
	if cfg.AvatarBaseURL != "" {
		clientOpts := []aimodel.Option{
			aimodel.WithBaseURL(cfg.AvatarBaseURL),
			aimodel.WithAPIKey(cfg.AvatarAPIKey),
			aimodel.WithTimeout(cfg.AvatarTimeout),
		}
		if cfg.AvatarModelID != "" {
			clientOpts = append(clientOpts, aimodel.WithModelID(cfg.AvatarModelID))
		}
		avatarOpts = append(avatarOpts,
			avatar.WithAIBackend(aimodel.New(clientOpts...)),
			avatar.WithBreaker(circuit.New("avatar-ai")),
		)
	}
	avatars := avatar.NewChain(procedural.New(), silhouette.New(), avatarOpts...)

	cards := card.New(
		card.WithAssetsDir(cfg.AssetsDir),
		card.WithAvatarSource(avatars),
		card.WithLogger(log),
	)

	identities := identity.New(ref,
		identity.WithLogger(log),
		identity.WithMetrics(identityMetrics.New()),
		identity.WithWorkers(cfg.BatchWorkers),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("refdata", func() error {
		if len(ref.Provinces) == 0 || len(ref.Surnames.Entries) == 0 {
			return errors.New("reference tables are empty")
		}
		return nil
	})

	router := httptransport.NewRouter(httptransport.RouterOptions{
		Identities:     httptransport.NewIdentityHandler(identities, log),
		Cards:          httptransport.NewCardHandler(cards, identities, log),
		Health:         healthHandler,
		Metrics:        metrics.New(),
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT or SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
