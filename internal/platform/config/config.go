package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	Port           string
	IsProduction   bool
	LogLevel       string

	// Storage start-up
	DBConnectAttempts int
	DBConnectDelay    time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Allowed CORS origin
	FrontendBaseURL string

	// Rate limits in limiter's formatted notation, e.g. "100-15M"
	RateLimit     string
	AuthRateLimit string
	RedisURL      string

	PosthogAPIKey   string
	PosthogEndpoint string

	// External OAuth Providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("DB_CONNECT_DELAY", "3s")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "168h")
	v.SetDefault("JWT_ISSUER", "bizbooks")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "100-15M")
	v.SetDefault("AUTH_RATE_LIMIT", "5-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "postmessage")

	// Environment wins over .env which wins over defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		DBConnectAttempts:  v.GetInt("DB_CONNECT_ATTEMPTS"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		FrontendBaseURL:    v.GetString("FRONTEND_BASE_URL"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		AuthRateLimit:      v.GetString("AUTH_RATE_LIMIT"),
		RedisURL:           v.GetString("REDIS_URL"),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:    v.GetString("POSTHOG_ENDPOINT"),
		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
	}

	if cfg.DatabaseURL == "" {
		// DATABASE_URL is what most hosting platforms inject
		cfg.DatabaseURL = v.GetString("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Storage will report unhealthy.")
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration(v.GetString("JWT_EXPIRY_DURATION"), 7*24*time.Hour, "JWT_EXPIRY_DURATION")
	cfg.DBConnectDelay = parseDuration(v.GetString("DB_CONNECT_DELAY"), 3*time.Second, "DB_CONNECT_DELAY")

	if cfg.DBConnectAttempts < 1 {
		log.Printf("Warning: Invalid value for DB_CONNECT_ATTEMPTS (%d). Defaulting to 5.\n", cfg.DBConnectAttempts)
		cfg.DBConnectAttempts = 5
	}

	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in is disabled.")
	}

	return cfg, nil
}

func parseDuration(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
