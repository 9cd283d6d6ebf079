package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := cmd.NewLogger(config)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(config, logger); err != nil {
		logger.Fatal("application stopped with error", zap.Error(err))
	}
}

func run(config cmd.Config, logger *zap.Logger) error {
	gormDB, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Run(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("database ready", zap.String("host", config.DBHost), zap.String("name", config.DBName))

	var redisClient *redis.Client
	if config.UseRedis() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("token store: redis", zap.String("addr", config.RedisAddr))
	}

	app := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)

	e, err := httpadapter.NewRouter(app.CreateHTTPHandlers(), app.CreateResolveActorQueryHandler(), logger)
	if err != nil {
		return err
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	jobManager, err := app.CreateJobManager(healthServer)
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%s", config.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	serveErr := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", zap.String("port", config.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			serveErr <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	go func() {
		logger.Info("HTTP server listening", zap.String("port", config.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("http server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.Stringer("signal", sig))
	case err = <-serveErr:
		logger.Error("server failed, shutting down", zap.Error(err))
	}

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(ctx); shutdownErr != nil {
		logger.Warn("HTTP server shutdown", zap.Error(shutdownErr))
	}
	logger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	return err
}
