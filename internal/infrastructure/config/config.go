package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backend selectors.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the credit service.
type Config struct {
	// gRPC server port
	GRPCPort int
	// HTTP metrics/health port
	HTTPPort int
	// Record store backend: memory, redis or postgres
	StorageBackend string
	// Database configuration (postgres backend)
	DB DatabaseConfig
	// Redis configuration (redis backend)
	Redis RedisConfig
	// Kafka configuration; empty Brokers disables publishing
	Kafka KafkaConfig
	// LedgerEpoch anchors the tick clock, RFC 3339
	LedgerEpoch string
	// Service name for observability
	ServiceName string
	// Logging
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	MigrationsDir string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds Kafka connection settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		GRPCPort:       getEnvInt("GRPC_PORT", 9094),
		HTTPPort:       getEnvInt("HTTP_PORT", 8094),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		DB: DatabaseConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnvInt("DB_PORT", 5432),
			User:          getEnv("DB_USER", "credit"),
			Password:      getEnv("DB_PASSWORD", ""),
			Name:          getEnv("DB_NAME", "credit"),
			SSLMode:       getEnv("DB_SSLMODE", "require"),
			MigrationsDir: getEnv("DB_MIGRATIONS", "file://internal/infrastructure/persistence/postgres/migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "credit-events"),
		},
		LedgerEpoch: getEnv("LEDGER_EPOCH", "2015-09-30T00:00:00Z"),
		ServiceName: getEnv("SERVICE_NAME", "credit-service"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

// Validate checks required configuration values.
func (c Config) Validate() {
	switch c.StorageBackend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		panic(fmt.Sprintf("STORAGE_BACKEND must be %s, %s or %s", BackendMemory, BackendRedis, BackendPostgres))
	}
	if c.StorageBackend == BackendPostgres && c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required for the postgres backend")
	}
}

// Epoch parses the configured ledger epoch.
func (c Config) Epoch() (time.Time, error) {
	epoch, err := time.Parse(time.RFC3339, c.LedgerEpoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse LEDGER_EPOCH: %w", err)
	}
	return epoch, nil
}

// GRPCAddr returns the gRPC listen address.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the HTTP listen address.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
