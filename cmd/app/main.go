package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiplabel/cmd"
	httpin "shiplabel/internal/adapters/in/http"
	"shiplabel/internal/adapters/out/easypost"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs := getConfigs()

	level, err := zapcore.ParseLevel(configs.LogLevel)
	if err != nil {
		log.Fatalf("Invalid LOG_LEVEL %q: %v", configs.LogLevel, err)
	}

	logger, err := newLogger(level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if configs.EasyPostAPIKey == "" {
		logger.Warn("EASYPOST_API_KEY is not set, label requests will fail with a configuration error")
	}

	app := cmd.NewCompositionRoot(configs, logger)
	startWebServer(app, configs, level, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		EasyPostAPIKey:     os.Getenv("EASYPOST_API_KEY"),
		EasyPostAPIURL:     envOrDefault("EASYPOST_API_URL", easypost.DefaultBaseURL),
		ProviderTimeout:    durationOrDefault("PROVIDER_TIMEOUT", easypost.DefaultTimeout),
		HTTPRequestTimeout: durationOrDefault("HTTP_REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		log.Fatalf("Invalid %s %q: expected a positive duration such as 15s", key, val)
	}
	return d
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, level zapcore.Level, logger *zap.Logger) {
	e, err := httpin.NewRouter(app.CreateServer(), httpin.RouterConfig{
		RequestTimeout: configs.HTTPRequestTimeout,
		LogLevel:       level,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Label service started", zap.String("port", configs.HTTPPort))
	<-quit
	logger.Info("Shutting down label service...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
