package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/collab-rating/api/v1"
	"github.com/godilite/collab-rating/internal/config"
	handler "github.com/godilite/collab-rating/internal/grpc"
	"github.com/godilite/collab-rating/internal/repository"
	"github.com/godilite/collab-rating/internal/service"
	"github.com/godilite/collab-rating/pkg/cache"
	dbbuilder "github.com/godilite/collab-rating/pkg/database"
	grpcsrv "github.com/godilite/collab-rating/pkg/grpc/server"
	"github.com/godilite/collab-rating/pkg/metrics"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger        *zap.Logger
	dbPool        *sql.DB
	cache         *cache.Cache
	metrics       *metrics.Manager
	grpcServer    *grpcsrv.Server
	metricsServer *http.Server
	metricsLis    net.Listener
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbOpts := []dbbuilder.Option{
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	}
	if cfg.DBPath == ":memory:" {
		// Every connection would otherwise get its own empty database.
		dbOpts = append(dbOpts, dbbuilder.WithMaxOpenConns(1))
	}
	dbPool, err := dbbuilder.New(ctx, dbOpts...)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	if cfg.DBMigrate {
		if err := repository.ApplySchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, err
		}
		logger.Info("Database schema applied")
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
		cache.WithPassword(cfg.RedisPassword),
		cache.WithDB(cfg.RedisDB),
	)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	metricsManager := metrics.NewManager()

	ratingService := service.NewRatingService(service.Repositories{
		WorkItems: repository.NewWorkItemRepository(dbPool),
		Directory: repository.NewOrgDirectoryRepository(dbPool),
		Templates: repository.NewRatingTemplateRepository(dbPool),
		Instances: repository.NewRatingInstanceRepository(dbPool),
		Responses: repository.NewRatingResponseRepository(dbPool),
	}, logger)

	grpcHandlers := handler.NewGRPCHandlers(ratingService, cacheClient, logger, cfg.CacheTTL,
		handler.WithRecorder(metricsManager))

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(cfg.GRPCLoggingEnabled),
		grpcsrv.WithMetrics(metricsManager),
	)
	if err != nil {
		cacheClient.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterServiceWithHealth(pb.RatingService_ServiceDesc.ServiceName, func(s *grpc.Server) {
		pb.RegisterRatingServiceServer(s, grpcHandlers)
	})

	a := &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		metrics:    metricsManager,
		grpcServer: grpcServer,
	}

	if cfg.MetricsPort > 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.MetricsPort))
		if err != nil {
			a.closeStores()
			return nil, fmt.Errorf("failed to listen for metrics on port %d: %w", cfg.MetricsPort, err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsManager.Handler())
		a.metricsLis = lis
		a.metricsServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}

	return a, nil
}

// GRPCAddr returns the address the gRPC server listens on.
func (a *App) GRPCAddr() net.Addr {
	return a.grpcServer.Addr()
}

// Start begins serving gRPC and, when enabled, metrics. It returns immediately.
func (a *App) Start() {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	if a.metricsServer != nil {
		a.logger.Info("metrics server starting", zap.String("addr", a.metricsLis.Addr().String()))
		go func() {
			if err := a.metricsServer.Serve(a.metricsLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return a.Shutdown(ctx)
}

// Shutdown stops the servers gracefully and releases the stores.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("application shutting down")

	var errs []error
	if err := a.grpcServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics shutdown: %w", err))
		}
	}
	a.closeStores()

	if err := errors.Join(errs...); err != nil {
		a.logger.Warn("shutdown completed with errors", zap.Error(err))
		return err
	}
	a.logger.Info("graceful shutdown completed successfully")
	_ = a.logger.Sync()
	return nil
}

func (a *App) closeStores() {
	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}
}
