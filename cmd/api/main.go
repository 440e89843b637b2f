package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gradgoals/gradgoals/internal/cache"
	"github.com/gradgoals/gradgoals/internal/config"
	"github.com/gradgoals/gradgoals/internal/handler"
	"github.com/gradgoals/gradgoals/internal/integrations/treasury"
	"github.com/gradgoals/gradgoals/internal/middleware"
	"github.com/gradgoals/gradgoals/internal/repository"
	"github.com/gradgoals/gradgoals/internal/scheduler"
	"github.com/gradgoals/gradgoals/internal/service"
	"github.com/gradgoals/gradgoals/internal/utils/email"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	repo, err := repository.Open(ctx, cfg.DBDriver, cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	// Initialize layers
	opts := []service.Option{
		service.WithCache(newCache(ctx, cfg, logger)),
		service.WithRateSource(treasury.NewClient(cfg, logger)),
	}
	if cfg.NotificationsEnabled() {
		opts = append(opts, service.WithNotifier(email.NewSender(cfg, logger)))
	} else {
		logger.Info("SMTP_HOST not set, goal emails disabled")
	}
	svc := service.NewService(repo, logger, cfg, opts...)
	h := handler.NewHandler(svc, logger)

	// Reminder job
	var sched *scheduler.Scheduler
	if cfg.NotificationsEnabled() {
		sched, err = scheduler.New(cfg.ReminderSchedule, svc, logger)
		if err != nil {
			logger.Fatalf("Failed to schedule reminders: %v", err)
		}
		sched.Start()
	}

	// Setup router
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer limiter.Stop()

	r := h.Routes()
	r.Use(middleware.Logging(logger))
	r.Use(middleware.RateLimit(limiter))
	r.Use(middleware.Identity(svc))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}

func newCache(ctx context.Context, cfg *config.Config, logger *logrus.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}
	rc := cache.NewRedisCache(cfg.RedisAddr, "gradgoals:")
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logger.Warnf("Redis at %s unreachable, using in-memory cache: %v", cfg.RedisAddr, err)
		_ = rc.Close()
		return cache.NewMemoryCache()
	}
	logger.Infof("Using Redis cache at %s", cfg.RedisAddr)
	return rc
}
