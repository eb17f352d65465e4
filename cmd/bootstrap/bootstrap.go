package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"patient-chatbot/config"
	"patient-chatbot/internal/chat"
	deliveryHttp "patient-chatbot/internal/delivery/http"
	"patient-chatbot/internal/delivery/http/handler"
	"patient-chatbot/internal/delivery/http/middleware"
	"patient-chatbot/internal/infrastructure/cache"
	"patient-chatbot/internal/infrastructure/database"
	"patient-chatbot/internal/observability/metrics"
	"patient-chatbot/internal/repository"
	"patient-chatbot/internal/service"
	"patient-chatbot/internal/usecase"
	"patient-chatbot/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, gormLogLevel(cfg.App.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if err := database.RunMigrations(db, log); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		log.Info("Redis connected successfully")
	} else {
		log.Info("REDIS_HOST not set, chat rate limiting disabled")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, app.RedisClient, log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}

func gormLogLevel(env string) logger.LogLevel {
	if env == "development" {
		return logger.Info
	}
	return logger.Warn
}

// setupChatMetrics registers the chat counters and runtime collectors on a
// private registry and returns the handler exposing them.
func setupChatMetrics() (http.Handler, *metrics.ChatMetrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	chatMetrics := metrics.NewChatMetrics(registry)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), chatMetrics
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	metricsHandler, chatMetrics := setupChatMetrics()

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	extractor := chat.NewExtractor(nil)
	chatUsecase := usecase.NewChatUsecase(log, appointmentRepo, auditService, extractor, chatMetrics, cfg.Chat)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatUsecase, customValidator, log)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogger := middleware.NewRequestLogger(log)

	var rateLimitMiddleware *middleware.RateLimitMiddleware
	if redisClient != nil {
		limiter := service.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, cfg.RateLimit.FailOpen, cfg.RateLimit.TrustProxy, log)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(
		chatHandler,
		appointmentHandler,
		corsMiddleware,
		requestLogger,
		rateLimitMiddleware,
		metricsHandler,
		cfg.App.StaticDir,
		log,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), app.Config.App.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
