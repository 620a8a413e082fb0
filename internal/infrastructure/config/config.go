package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// KafkaConfig holds broker addresses and the event topic.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RedisConfig holds the client-cache connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLSecs  int
}

// Config is the full service configuration, loaded from the environment.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          DatabaseConfig
	Kafka       KafkaConfig
	Redis       RedisConfig
	LogLevel    string
	ServiceName string
}

// Validate panics on configuration the service cannot start without.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

// Load reads configuration from the environment, falling back to a local
// .env file when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9094),
		HTTPPort: getEnvInt("HTTP_PORT", 8094),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "credora"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "credit_analysis"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "analysis-events"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTLSecs:  getEnvInt("REDIS_CLIENT_TTL_SECS", 300),
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ServiceName: "credit-analysis-service",
	}
}

// GRPCAddr returns the listen address for the gRPC server.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the listen address for the HTTP server.
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
