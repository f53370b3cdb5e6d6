package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds the tunable attendance/payroll constants.
type PayrollConfig struct {
	// GracePeriodMinutes after shift start before a check-in counts late.
	GracePeriodMinutes int
	// PenaltyPerMinute is the lateness deduction rate in whole rupiah.
	PenaltyPerMinute int64
}

func Load() (*Config, error) {
	// A missing .env is fine: all values have env-var fallbacks.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "mera-studio"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Payroll configuration
	graceMinutes, err := strconv.Atoi(getEnv("PAYROLL_GRACE_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_GRACE_MINUTES: %w", err)
	}

	penaltyPerMinute, err := strconv.ParseInt(getEnv("PAYROLL_PENALTY_PER_MINUTE", "500"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_PENALTY_PER_MINUTE: %w", err)
	}

	config.Payroll = PayrollConfig{
		GracePeriodMinutes: graceMinutes,
		PenaltyPerMinute:   penaltyPerMinute,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Payroll.GracePeriodMinutes < 0 {
		return fmt.Errorf("PAYROLL_GRACE_MINUTES must not be negative")
	}
	if c.Payroll.PenaltyPerMinute < 0 {
		return fmt.Errorf("PAYROLL_PENALTY_PER_MINUTE must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
