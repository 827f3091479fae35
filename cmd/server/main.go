// main wires high-level dependencies and keeps the server lifecycle small.
// The registry state machine lives in internal/core; everything here is
// configuration, relays, and shutdown plumbing.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"bluecarbon/internal/core"
	"bluecarbon/internal/eventlog"
	"bluecarbon/internal/evidence"
	"bluecarbon/internal/jwttoken"
	"bluecarbon/internal/platform/config"
	"bluecarbon/internal/platform/httpserver"
	"bluecarbon/internal/platform/logger"
	"bluecarbon/internal/platform/metrics"
	platformredis "bluecarbon/internal/platform/redis"
	"bluecarbon/internal/readmodel"
	httptransport "bluecarbon/internal/transport/http"
	"bluecarbon/pkg/domain"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	admin, err := domain.ParseAccountID(cfg.AdminAccount)
	if err != nil {
		log.Error("invalid admin account", "error", err)
		os.Exit(1)
	}
	registryAccount, err := domain.ParseAccountID(cfg.RegistryAccount)
	if err != nil {
		log.Error("invalid registry account", "error", err)
		os.Exit(1)
	}

	node := core.NewNode(admin, registryAccount, nil)

	var evidenceStore httptransport.EvidenceStore
	if cfg.EvidenceDir != "" {
		fsStore, err := evidence.NewFS(cfg.EvidenceDir)
		if err != nil {
			log.Error("evidence store init failed", "dir", cfg.EvidenceDir, "error", err)
			os.Exit(1)
		}
		evidenceStore = fsStore
	} else {
		evidenceStore = evidence.NewMemory()
	}

	jwtSvc := jwttoken.NewJWTService(cfg.JWTSigningKey, "bluecarbon", "bluecarbon-api")
	m := metrics.New()
	handler := httptransport.New(node, evidenceStore, log, m, jwttoken.NewMiddlewareAdapter(jwtSvc), jwtSvc)

	router := chi.NewRouter()
	handler.Register(router)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	// Optional relays. Each one tails the in-memory chain independently;
	// the core never waits on any of them.
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		store := eventlog.NewPostgres(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema init failed", "error", err)
			os.Exit(1)
		}
		sink := eventlog.NewSink(node.Log(), store, log)
		g.Go(func() error { return ignoreCancel(sink.Run(ctx)) })
		log.Info("durable log sink enabled")
	}

	if len(cfg.KafkaBrokers) > 0 {
		pub, err := eventlog.NewPublisher(node.Log(), cfg.KafkaBrokers, cfg.KafkaTopic, log)
		if err != nil {
			log.Error("kafka publisher init failed", "error", err)
			os.Exit(1)
		}
		g.Go(func() error { return ignoreCancel(pub.Run(ctx)) })
		log.Info("log publisher enabled", "topic", cfg.KafkaTopic)
	}

	if cfg.Redis.URL != "" {
		redisClient, err := platformredis.New(cfg.Redis)
		if err != nil {
			log.Error("redis connect failed", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		projection := readmodel.New(redisClient.Client, node.Log(), log)
		g.Go(func() error { return ignoreCancel(projection.Run(ctx)) })
		log.Info("read model projection enabled")
	}

	g.Go(func() error {
		log.Info("starting bluecarbon registry", "addr", cfg.Addr,
			"admin", cfg.AdminAccount, "registry_account", cfg.RegistryAccount)
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
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// ignoreCancel treats context cancellation as a clean exit so shutdown does
// not report relay errors.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
