package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/config"
	dbRedis "github.com/saintgiong/discovery/internal/db/redis"
	logpkg "github.com/saintgiong/discovery/internal/logger"
	"github.com/saintgiong/discovery/internal/metrics"
	candidaterepo "github.com/saintgiong/discovery/internal/repository/candidate"
	profilerepo "github.com/saintgiong/discovery/internal/repository/profile"
	chiTransport "github.com/saintgiong/discovery/internal/transport/chi"
	"github.com/saintgiong/discovery/internal/transport/companies"
	"github.com/saintgiong/discovery/internal/transport/stream"
	"github.com/saintgiong/discovery/internal/transport/upstream"
	discoveryuc "github.com/saintgiong/discovery/internal/usecase/discovery"
	healthuc "github.com/saintgiong/discovery/internal/usecase/health"
	matchuc "github.com/saintgiong/discovery/internal/usecase/match"
	profileuc "github.com/saintgiong/discovery/internal/usecase/profile"
	searchuc "github.com/saintgiong/discovery/internal/usecase/search"
	syncuc "github.com/saintgiong/discovery/internal/usecase/syncer"
	"github.com/saintgiong/discovery/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting discovery service",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("redis_addrs", cfg.Redis.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Redis.Addrs,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create index store", zap.Error(err))
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Redis.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Index store not ready", zap.Error(err))
	}
	logger.Info("Connected to index store")

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("Failed to create profile store pool", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Profile store not ready", zap.Error(err))
	}
	logger.Info("Connected to profile store")

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterDiscoveryMetrics()

	// Repositories
	candidateRepo := candidaterepo.New(store)
	if err := candidateRepo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to create candidate index", zap.Error(err))
	}
	profileRepo := profilerepo.New(pool)
	if err := profileRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to prepare profile schema", zap.Error(err))
	}

	// Outbound collaborators
	companyClient := companies.NewClient(&companies.Config{
		BaseURL: cfg.Companies.BaseURL,
		Timeout: time.Duration(cfg.Companies.TimeoutSec) * time.Second,
		Logger:  logger,
	})
	notifier := stream.NewNotifier(store)

	// Use case services
	profileSvc := profileuc.New(profileRepo)
	searchSvc := searchuc.New(candidateRepo).
		WithPagination(cfg.Search.DefaultPageSize, cfg.Search.MaxPageSize)
	evaluator := matchuc.New()
	coordinator := discoveryuc.New(candidateRepo, companyClient, profileRepo, evaluator, notifier, logger).
		WithRetry(cfg.Discovery.RetryAttempts, time.Duration(cfg.Discovery.RetryBaseMilli)*time.Millisecond)
	healthSvc := healthuc.New(store, pool)

	// Lifecycle feed consumer
	consumer := stream.NewConsumer(store, coordinator, stream.ConsumerConfig{
		Group:     cfg.Streams.Group,
		Name:      cfg.Streams.Consumer,
		Workers:   cfg.Streams.Workers,
		BatchSize: cfg.Streams.BatchSize,
		Block:     time.Duration(cfg.Streams.BlockSec) * time.Second,
	}, logger)

	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := consumer.Run(ctx); err != nil {
			logger.Error("Feed consumer stopped", zap.Error(err))
		}
	}()

	// Optional periodic full re-sync from the upstream applicant system
	var syncSvc *syncuc.Service
	var scheduler *cron.Cron
	if cfg.Sync.Enabled {
		upstreamClient := upstream.NewClient(&upstream.Config{
			BaseURL: cfg.Upstream.BaseURL,
			Timeout: time.Duration(cfg.Upstream.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		syncSvc = syncuc.New(upstreamClient, candidateRepo, logger)

		scheduler = cron.New()
		if _, err := scheduler.AddFunc(cfg.Sync.Cron, func() {
			if _, err := syncSvc.Sync(ctx); err != nil {
				logger.Error("Scheduled sync failed", zap.Error(err))
				metrics.SyncPassesTotal.WithLabelValues("error").Inc()
				return
			}
			metrics.SyncPassesTotal.WithLabelValues("ok").Inc()
		}); err != nil {
			logger.Fatal("Invalid sync cron spec", zap.Error(err))
		}
		scheduler.Start()
		logger.Info("Scheduled periodic sync", zap.String("cron", cfg.Sync.Cron))
	}

	// HTTP API
	server := chiTransport.NewServer(profileSvc, searchSvc, syncSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys, "/health", "/metrics"))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	// Workers abandon in-flight evaluation once the root context is gone.
	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		logger.Warn("Feed consumer did not stop in time")
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "INTERNAL_ERROR",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
