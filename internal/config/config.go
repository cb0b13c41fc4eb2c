// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DataDir  string // base directory for the runs database
	Port     int
	LogLevel string
	DevMode  bool

	// Solver defaults; individual requests can override depth/shots/seed.
	MaxQubits      int
	DefaultDepth   int
	DefaultShots   int
	DefaultSeed    int64
	OptimizerMode  string // "neldermead" or "random"
	OptimizerStart int    // independent restarts
	OptimizerEvals int    // objective evaluations per restart
	RandomSamples  int    // theta draws for random-search mode

	RetentionDays int // persisted runs older than this are pruned
}

// Load reads configuration from environment variables, consulting a .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:        getEnv("DATA_DIR", "./data"),
		Port:           getEnvAsInt("PORT", 8010),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		MaxQubits:      getEnvAsInt("QAOA_MAX_QUBITS", 20),
		DefaultDepth:   getEnvAsInt("QAOA_DEPTH", 3),
		DefaultShots:   getEnvAsInt("QAOA_SHOTS", 4096),
		DefaultSeed:    int64(getEnvAsInt("QAOA_SEED", 42)),
		OptimizerMode:  getEnv("QAOA_OPTIMIZER", "neldermead"),
		OptimizerStart: getEnvAsInt("QAOA_OPTIMIZER_STARTS", 5),
		OptimizerEvals: getEnvAsInt("QAOA_OPTIMIZER_EVALS", 250),
		RandomSamples:  getEnvAsInt("QAOA_RANDOM_SAMPLES", 100),
		RetentionDays:  getEnvAsInt("RUNS_RETENTION_DAYS", 90),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MaxQubits < 1 || c.MaxQubits > 24 {
		return fmt.Errorf("QAOA_MAX_QUBITS must be in [1, 24], got %d", c.MaxQubits)
	}
	if c.DefaultDepth < 1 {
		return fmt.Errorf("QAOA_DEPTH must be at least 1, got %d", c.DefaultDepth)
	}
	if c.DefaultShots < 1 {
		return fmt.Errorf("QAOA_SHOTS must be at least 1, got %d", c.DefaultShots)
	}
	if c.OptimizerMode != "neldermead" && c.OptimizerMode != "random" {
		return fmt.Errorf("QAOA_OPTIMIZER must be neldermead or random, got %q", c.OptimizerMode)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
