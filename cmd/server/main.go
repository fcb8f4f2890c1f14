// Copyright 2026 The Rentbase Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/auth"
	"github.com/rentbase/rentbase/internal/config"
	"github.com/rentbase/rentbase/internal/observability/logger"
	"github.com/rentbase/rentbase/internal/observability/metrics"
	"github.com/rentbase/rentbase/internal/observability/tracing"
	"github.com/rentbase/rentbase/internal/rental"
	"github.com/rentbase/rentbase/internal/store/memory"
	"github.com/rentbase/rentbase/internal/store/postgres"
	transportHTTP "github.com/rentbase/rentbase/internal/transport/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.InitLogger(logger.Config{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})
	slog.Info("starting rentbase", logger.Backend(cfg.Store.Backend))

	// Initialize context
	ctx := context.Background()

	// Initialize tracer
	tracer, err := tracing.New(ctx, tracing.Config{
		Enabled:        cfg.Observability.OTELEnabled,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		SamplingRate:   1.0,
	})
	if err != nil {
		slog.Error("failed to initialize tracer", logger.Error(err))
	}
	defer tracer.Shutdown(ctx)

	// Initialize meter
	meter, err := metrics.New(ctx, metrics.Config{
		Enabled: cfg.Observability.OTELEnabled,
	}, cfg.Observability.ServiceName)
	if err != nil {
		slog.Error("failed to initialize meter", logger.Error(err))
		os.Exit(1)
	}
	httpMetrics, err := metrics.NewHTTPMetrics(meter)
	if err != nil {
		slog.Error("failed to create http metrics", logger.Error(err))
		os.Exit(1)
	}

	// Initialize store
	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize store", logger.Error(err), logger.Backend(cfg.Store.Backend))
		os.Exit(1)
	}
	defer cleanup()

	// Initialize helpers
	auditLogger := audit.NewSlogLogger()
	passwordHasher := auth.NewPasswordHasher(
		cfg.Security.Argon2Memory,
		cfg.Security.Argon2Iterations,
		cfg.Security.Argon2Parallelism,
		cfg.Security.Argon2SaltLength,
		cfg.Security.Argon2KeyLength,
	)
	tokenIssuer := auth.NewTokenIssuer(cfg.Security.JWTSecret, cfg.Security.TokenLifetime)
	authService := auth.NewService(store, passwordHasher, tokenIssuer, auditLogger)

	// Demo fixture. Skipped when a previous run already seeded the backend.
	if cfg.Store.SeedDemo {
		if _, err := store.GetUserByUsername(ctx, "admin"); err != nil {
			if err := rental.SeedDemo(ctx, store, passwordHasher.Hash); err != nil {
				slog.Error("failed to seed demo data", logger.Error(err))
				os.Exit(1)
			}
			slog.Info("demo data seeded")
		}
	}

	// Rate Limiter
	rateLimiter := transportHTTP.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	// Initialize HTTP handler and router
	handler := transportHTTP.NewHandler(store, authService, auditLogger, httpMetrics)
	router := transportHTTP.NewRouter(handler, rateLimiter)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server
	go func() {
		slog.Info("starting http server", logger.Component("server"), logger.Operation("listen"))
		slog.Info(fmt.Sprintf("listening on %s", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", logger.Error(err))
	}

	slog.Info("server stopped")
}

// newStore builds the configured backend. The returned cleanup is a no-op
// for the in-memory store.
func newStore(ctx context.Context, cfg *config.Config) (rental.Store, func(), error) {
	if cfg.Store.Backend == config.BackendMemory {
		return memory.New(), func() {}, nil
	}

	db, err := postgres.New(ctx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return nil, nil, err
	}
	slog.Info("connected to database")

	return postgres.NewStore(db), db.Close, nil
}
