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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ngdp/geoportal/internal/config"
	dbRedis "github.com/ngdp/geoportal/internal/db/redis"
	"github.com/ngdp/geoportal/internal/db/sqlite"
	logpkg "github.com/ngdp/geoportal/internal/logger"
	"github.com/ngdp/geoportal/internal/metrics"
	"github.com/ngdp/geoportal/internal/repository/catalog"
	"github.com/ngdp/geoportal/internal/repository/visitor"
	"github.com/ngdp/geoportal/internal/static"
	chiTransport "github.com/ngdp/geoportal/internal/transport/chi"
	chatbotuc "github.com/ngdp/geoportal/internal/usecase/chatbot"
	healthuc "github.com/ngdp/geoportal/internal/usecase/health"
	searchuc "github.com/ngdp/geoportal/internal/usecase/search"
	statsuc "github.com/ngdp/geoportal/internal/usecase/stats"
	"github.com/ngdp/geoportal/internal/version"
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

	logger.Info("Starting geoportal API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_path", cfg.Database.Path),
		zap.Bool("visitor_analytics", cfg.VisitorAnalyticsEnabled()),
	)

	// Content database
	contentDB, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open content database", zap.Error(err))
	}
	defer contentDB.Close()

	if err := contentDB.Init(); err != nil {
		logger.Fatal("Failed to init content schema", zap.Error(err))
	}

	ctx := context.Background()
	if err := contentDB.Ping(ctx); err != nil {
		logger.Fatal("Content database not reachable", zap.Error(err))
	}
	logger.Info("Connected to content database")

	// Optional visitor counter store. Pass nil interfaces (not typed nil
	// pointers!) downstream when analytics is disabled.
	// Go gotcha: (*visitor.Store)(nil) wrapped in stats.Repository != nil.
	var visitRepo statsuc.Repository
	var counterPinger healthuc.Pinger
	if cfg.VisitorAnalyticsEnabled() {
		counters, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Redis.Addrs,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create counter store", zap.Error(err))
		}
		defer counters.Close()

		readiness := time.Duration(cfg.Redis.ReadinessTimeout) * time.Second
		if err := counters.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Counter store not ready", zap.Error(err))
		}
		logger.Info("Connected to counter store")

		visitRepo = visitor.New(counters)
		counterPinger = counters
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Entity adapters in the portal's fixed search order
	catalogAdapters := catalog.Adapters(contentDB.DB())
	adapters := make([]searchuc.Adapter, len(catalogAdapters))
	for i, a := range catalogAdapters {
		adapters[i] = a
	}

	// Use case services
	assets := static.NewResolver(cfg.Static.BaseURL)
	searchSvc := searchuc.New(adapters, assets)
	chatbotSvc := chatbotuc.New(
		searchSvc,
		chatbotuc.DefaultMessages(cfg.Chatbot.ContactURL, cfg.Chatbot.ContactPhone),
		cfg.Search.ChatbotLimit,
	)
	statsSvc := statsuc.New(visitRepo, logger)
	healthSvc := healthuc.New(contentDB, counterPinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, chatbotSvc, statsSvc, healthSvc, logger, chiTransport.Limits{
		DefaultLimit: cfg.Search.DefaultLimit,
		MaxLimit:     cfg.Search.MaxLimit,
	})

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Use(chiTransport.VisitTracker(statsSvc))
	server.Mount(r)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns the portal envelope
// instead of a plain text stacktrace.
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
					_ = json.NewEncoder(w).Encode(map[string]any{
						"success":    false,
						"message":    "Internal error",
						"error_code": "INTERNAL_ERROR",
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

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
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
