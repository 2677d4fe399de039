package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config gathers every setting the server needs at startup.
type Config struct {
	Port        string
	Env         string
	CORSOrigins string

	ModelPath      string
	CurrencySymbol string

	DB    DBConfig
	Redis RedisConfig

	JWTSecret string

	RateLimitMax    int
	RateLimitWindow time.Duration
	HistoryCacheTTL time.Duration
}

// DBConfig holds PostgreSQL connection and pool settings.
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:           GetEnv("PORT", "8000"),
		Env:            GetEnv("ENV", "development"),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
		ModelPath:      GetEnv("MODEL_PATH", "ml/models/upi_classifier.json"),
		CurrencySymbol: GetEnv("CURRENCY_SYMBOL", "₹"),
		DB: DBConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "cypher"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		JWTSecret:       GetEnv("JWT_SECRET", ""),
		RateLimitMax:    GetIntEnv("RATE_LIMIT_MAX", 60),
		RateLimitWindow: GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		HistoryCacheTTL: GetDurationEnv("HISTORY_CACHE_TTL", 5*time.Minute),
	}
}

// DSN builds the PostgreSQL connection string.
func (c DBConfig) DSN() string {
	parts := []string{
		"host=" + c.Host,
		"user=" + c.User,
		"password=" + c.Password,
		"dbname=" + c.Name,
		"port=" + c.Port,
		"sslmode=" + c.SSLMode,
	}
	return strings.Join(parts, " ")
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the loaded configuration targets production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
