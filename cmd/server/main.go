package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"consentlens/internal/consent"
	"consentlens/internal/evaluation"
	"consentlens/internal/generation"
	"consentlens/internal/ledger"
	"consentlens/internal/platform/config"
	"consentlens/internal/platform/httpserver"
	"consentlens/internal/platform/logger"
	"consentlens/internal/platform/metrics"
	"consentlens/internal/profile"
	httptransport "consentlens/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	m := metrics.New(prometheus.DefaultRegisterer)

	profiles := profile.NewInMemoryStore()
	if err := profiles.Seed(context.Background()); err != nil {
		log.Error("failed to seed profiles", "error", err.Error())
		os.Exit(1)
	}

	consentSvc := consent.NewService(consent.NewInMemoryStore())
	generator := generation.NewService(profiles, generation.NewEngine())
	ledgerSvc := ledger.NewService(ledger.NewInMemoryStore())
	evaluationSvc := evaluation.NewService(ledgerSvc, generator)

	handler := httptransport.New(log, m, consentSvc, generator, ledgerSvc, evaluationSvc)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting consentlens", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
