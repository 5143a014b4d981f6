package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures server level configuration. FromEnv builds it from
// environment variables so main stays lean.
type Config struct {
	Addr        string
	Environment string

	// Provider is the external verification collaborator.
	Provider ProviderConfig

	// ReportBaseURL is the public base used to build shareable report links.
	ReportBaseURL string

	DatabaseURL string
	Redis       RedisConfig
	Kafka       KafkaConfig

	// InquiryCacheTTL enforces retention for cached provider data.
	InquiryCacheTTL time.Duration

	// DemoMode serves deterministic provider fixtures instead of calling out.
	DemoMode bool
}

// ProviderConfig configures the verification provider client.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// RedisConfig configures the inquiry cache connection.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures audit event publishing.
type KafkaConfig struct {
	Brokers    string
	AuditTopic string
}

// FromEnv builds a Config from environment variables, applying development
// defaults where unset.
func FromEnv() Config {
	return Config{
		Addr:          envOr("VETGATE_ADDR", ":8080"),
		Environment:   envOr("VETGATE_ENV", "development"),
		ReportBaseURL: envOr("VETGATE_REPORT_BASE_URL", "http://localhost:8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DemoMode:      os.Getenv("VETGATE_DEMO_MODE") == "true",
		Provider: ProviderConfig{
			BaseURL: envOr("PROVIDER_BASE_URL", "https://api.trustii.example"),
			APIKey:  os.Getenv("PROVIDER_API_KEY"),
			Timeout: durationOr("PROVIDER_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     intOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: intOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  durationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    os.Getenv("KAFKA_BROKERS"),
			AuditTopic: os.Getenv("KAFKA_AUDIT_TOPIC"),
		},
		InquiryCacheTTL: durationOr("INQUIRY_CACHE_TTL", 5*time.Minute),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
