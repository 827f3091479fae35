// Package config builds runtime configuration from the environment so main
// stays lean. Unset backends (postgres, redis, kafka) simply disable the
// corresponding relay; the core registry runs fine without any of them.
package config

import (
	"os"
	"strings"
	"time"
)

// Server captures everything the binary needs at startup.
type Server struct {
	Addr          string
	JWTSigningKey string

	// AdminAccount holds Administrator, Issuer and Verifier at bootstrap.
	AdminAccount string

	// RegistryAccount is the registry's own identity on the credit ledger.
	// Revoking its Issuer role suspends approvals until re-granted.
	RegistryAccount string

	// PostgresURL enables the durable log sink when set.
	PostgresURL string

	// Redis enables the read-model projection when its URL is set.
	Redis RedisConfig

	// KafkaBrokers enables the log publisher when non-empty.
	KafkaBrokers []string
	KafkaTopic   string

	// EvidenceDir switches evidence storage from memory to disk when set.
	EvidenceDir string
}

// RedisConfig captures connection tuning for the read model.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables, applying
// development defaults where it is safe to.
func FromEnv() Server {
	cfg := Server{
		Addr:            getenv("BLUECARBON_ADDR", ":8080"),
		JWTSigningKey:   getenv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		AdminAccount:    getenv("BLUECARBON_ADMIN_ACCOUNT", "admin"),
		RegistryAccount: getenv("BLUECARBON_REGISTRY_ACCOUNT", "registry"),
		PostgresURL:     os.Getenv("BLUECARBON_POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("BLUECARBON_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaTopic:  getenv("BLUECARBON_KAFKA_TOPIC", "bluecarbon.ledger-log"),
		EvidenceDir: os.Getenv("BLUECARBON_EVIDENCE_DIR"),
	}
	if brokers := os.Getenv("BLUECARBON_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
