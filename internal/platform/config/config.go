package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string
	JWTIssuer    string

	// External identity service
	UserServiceBaseURL string

	// Kafka
	KafkaBroker            string
	KafkaAccountEventsTopic string

	// Redis catalog cache
	RedisAddr           string
	RedisPassword       string
	AccountTypeCacheTTL time.Duration

	// Reconciliation sweep for accounts stranded mid-transition
	ReconcileSpec       string
	ReconcileStuckAfter time.Duration

	// Requests per minute per client IP
	RateLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "accounts-service")
	viper.SetDefault("USER_SERVICE_BASE_URL", "http://localhost:8081")
	viper.SetDefault("KAFKA_BROKER", "localhost:9092")
	viper.SetDefault("KAFKA_ACCOUNT_EVENTS_TOPIC", "account.events")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("ACCOUNT_TYPE_CACHE_TTL", "24h")
	viper.SetDefault("RECONCILE_SPEC", "@every 5m")
	viper.SetDefault("RECONCILE_STUCK_AFTER", "5m")
	viper.SetDefault("RATE_LIMIT", 120)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.UserServiceBaseURL = viper.GetString("USER_SERVICE_BASE_URL")
	cfg.KafkaBroker = viper.GetString("KAFKA_BROKER")
	cfg.KafkaAccountEventsTopic = viper.GetString("KAFKA_ACCOUNT_EVENTS_TOPIC")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")

	cacheTTLStr := viper.GetString("ACCOUNT_TYPE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 24 * time.Hour
		log.Printf("Warning: Invalid value for ACCOUNT_TYPE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.AccountTypeCacheTTL = cacheTTL

	cfg.ReconcileSpec = viper.GetString("RECONCILE_SPEC")

	stuckAfterStr := viper.GetString("RECONCILE_STUCK_AFTER")
	stuckAfter, err := time.ParseDuration(stuckAfterStr)
	if err != nil {
		stuckAfter = 5 * time.Minute
		log.Printf("Warning: Invalid value for RECONCILE_STUCK_AFTER ('%s'). Defaulting to %s.\n", stuckAfterStr, stuckAfter.String())
	}
	cfg.ReconcileStuckAfter = stuckAfter

	cfg.RateLimit = viper.GetInt("RATE_LIMIT")

	return cfg, nil
}
