package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port       int
	LogLevel   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	APIKey     string           // API key for authentication
	ClaimMode  domain.ClaimMode // payout-authorization strategy for this deployment
	MaxFeeBps  int              // upper bound accepted for a round's creator fee
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "parimutuel"),
		APIKey:     getEnv("API_KEY", ""),
		ClaimMode:  domain.ClaimMode(getEnv("CLAIM_MODE", string(domain.ClaimModeLedger))),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxFeeStr := getEnv("MAX_FEE_BPS", strconv.Itoa(DefaultMaxFeeBps))
	maxFee, err := strconv.Atoi(maxFeeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_FEE_BPS value: %w", err)
	}
	if maxFee < 0 || maxFee >= domain.FeeDenominator {
		return nil, fmt.Errorf("MAX_FEE_BPS must be in [0, %d)", domain.FeeDenominator)
	}
	cfg.MaxFeeBps = maxFee

	if !cfg.ClaimMode.Valid() {
		return nil, fmt.Errorf("CLAIM_MODE must be %q or %q", domain.ClaimModeLedger, domain.ClaimModeProof)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
