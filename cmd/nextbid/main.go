package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/nextbid/grpcapp"
	"github.com/ozzus/nextbid/internal/application/service"
	"github.com/ozzus/nextbid/internal/config"
	"github.com/ozzus/nextbid/internal/domain/ports"
	postgres "github.com/ozzus/nextbid/internal/infrastructures/db/postgres/repo"
	cacheredis "github.com/ozzus/nextbid/internal/infrastructures/db/redis"
	bidtracing "github.com/ozzus/nextbid/internal/infrastructures/db/tracing"
	"github.com/ozzus/nextbid/internal/infrastructures/fixtures"
	tripreport "github.com/ozzus/nextbid/internal/infrastructures/tripreport/http/client"
	grpcapi "github.com/ozzus/nextbid/internal/transport/grpc"
	"github.com/ozzus/nextbid/internal/transport/httpapi"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := bidtracing.InitTracer("nextbid", cfg.Env, cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	log.Info("nextbid starting",
		zap.String("env", cfg.Env),
		zap.String("http_addr", cfg.HTTP.Address()),
		zap.Int("grpc_port", cfg.GRPC.Port),
		zap.String("profiles_source", cfg.Storage.Profiles),
		zap.String("trips_source", cfg.Storage.Trips),
	)

	var repo *postgres.Repository
	if cfg.Storage.UsesPostgres() {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		repo, err = postgres.New(connectCtx, cfg.DB.DatabaseURL())
		cancel()
		if err != nil {
			log.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer repo.Close()
	}

	store := fixtures.NewFileStore(cfg.Storage.FixturesDir)

	var profiles ports.ProfileReader = store
	if cfg.Storage.Profiles == config.SourcePostgres {
		profiles = repo
	}

	var trips ports.TripCatalog = store
	switch cfg.Storage.Trips {
	case config.SourcePostgres:
		trips = repo
	case config.SourceTripReport:
		trips = tripreport.NewClient(cfg.TripReport.BaseURL, cfg.TripReport.Token, cfg.TripReport.Timeout)
	}

	var cache ports.BidGroupCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		}()
		cache = cacheredis.NewBidGroupCache(redisClient)
	}

	bidService := service.NewBidService(log, profiles, trips, cache, cfg.BidGroupCacheTTL, cfg.Compiler.MaxLines)

	app := grpcapp.New(log, cfg.GRPC.Host, cfg.GRPC.Port, cfg.GRPC.Timeout, func(s *grpc.Server) {
		grpcapi.Register(s, log, bidService)
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Address(),
		Handler:      httpapi.NewRouter(log, bidService, cfg.HTTP.WriteTimeout),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- app.Run()
	}()
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}
	app.Stop(shutdownCtx)
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
