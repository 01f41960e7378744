package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/suyogshiftcare/shiftcare-booking/internal/api/router"
	"github.com/suyogshiftcare/shiftcare-booking/internal/appointments"
	appconfig "github.com/suyogshiftcare/shiftcare-booking/internal/config"
	"github.com/suyogshiftcare/shiftcare-booking/internal/doctors"
	"github.com/suyogshiftcare/shiftcare-booking/internal/http/handlers"
	"github.com/suyogshiftcare/shiftcare-booking/internal/kvstore"
	"github.com/suyogshiftcare/shiftcare-booking/internal/observability/metrics"
	"github.com/suyogshiftcare/shiftcare-booking/pkg/logging"
)

func main() {
	// A local .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting shiftcare booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Storage
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		logger.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	cancelPing()

	// Core services
	reg := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(reg)
	store := appointments.NewStore(kvstore.NewRedisStore(redisClient), logger)
	service := appointments.NewService(store, logger, bookingMetrics)
	feed := doctors.NewClient(cfg.DoctorFeedURL, logger)

	bookingHandler := handlers.NewBookingHandler(service, feed, bookingMetrics, logger)

	// Router
	routerCfg := &router.Config{
		Logger:             logger,
		BookingHandler:     bookingHandler,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminAuthSecret:    cfg.AdminJWTSecret,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	_ = redisClient.Close()
	logger.Info("server stopped")
}
