package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/finhub/accounts_service/internal/adapters/cache/redis"
	"github.com/finhub/accounts_service/internal/adapters/database/pgsql"
	"github.com/finhub/accounts_service/internal/adapters/kafka"
	"github.com/finhub/accounts_service/internal/adapters/userclient"
	"github.com/finhub/accounts_service/internal/core/services"
	"github.com/finhub/accounts_service/internal/handlers"
	"github.com/finhub/accounts_service/internal/middleware"
	"github.com/finhub/accounts_service/internal/platform/config"
	"github.com/finhub/accounts_service/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Accounts Service API
// @version 1.0
// @description Account lifecycle service: opening, maintenance and closure of financial accounts.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis-backed account type catalog cache
	redisClient, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, 0)
	if err != nil {
		logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()
	typeCache := redis.NewAccountTypeCache(redisClient, cfg.AccountTypeCacheTTL)

	// Kafka lifecycle event producer
	producer := kafka.NewProducer(cfg.KafkaBroker, cfg.KafkaAccountEventsTopic)
	defer func() {
		if cerr := producer.Close(); cerr != nil {
			logger.Error("Error closing kafka producer", slog.String("error", cerr.Error()))
		}
	}()

	// External identity service client
	userVerifier := userclient.NewClient(cfg.UserServiceBaseURL)

	// Wire repositories and services
	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(repos, typeCache, userVerifier, producer)

	// Reconciliation sweep for accounts stranded mid-transition
	reconciler := services.NewReconciliationService(repos.AccountRepo, producer, cfg.ReconcileStuckAfter)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ReconcileSpec, func() {
		reconciler.ReconcileStuckAccounts(context.Background())
	}); err != nil {
		logger.Error("Failed to schedule reconciliation sweep", slog.String("error", err.Error()))
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate := limiter.Rate{Period: time.Minute, Limit: int64(cfg.RateLimit)}
	limiterInstance := limiter.New(limitermemory.NewStore(), rate)
	r.Use(middleware.RateLimit(limiterInstance))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
