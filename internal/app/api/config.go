package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.temporal.io/sdk/client"

	adoptionworkflows "github.com/Apurer/go-gin-shelter-api/internal/durable/temporal/workflows/adoption"
)

// Config carries environment-driven settings for the API and worker processes.
type Config struct {
	ServiceName       string
	Port              string
	PostgresDSN       string
	SeedCatalog       bool
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	TaskQueue         string
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		ServiceName:       envDefault("SERVICE_NAME", "shelter-adoption-api"),
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SeedCatalog:       true,
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		TaskQueue:         envDefault("ADOPTION_TASK_QUEUE", adoptionworkflows.DecisionTaskQueue),
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be a valid TCP port, got %q", cfg.Port)
	}
	if raw := strings.TrimSpace(os.Getenv("CATALOG_SEED")); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("CATALOG_SEED must be a boolean, got %q", raw)
		}
		cfg.SeedCatalog = seed
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
