package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the terminal application
type Config struct {
	Environment   string
	Database      DatabaseConfig
	Log           LogConfig
	NoticeTimeout time.Duration
	TickInterval  time.Duration
	SeedDemo      bool
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
	DSN      string
}

// LogConfig controls where and how the application logs. The terminal is
// owned by the UI, so logs always go to a file.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Supported values for DB_DRIVER.
const (
	DriverMemory   = "memory"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Driver:   getEnv("DB_DRIVER", DriverMemory),
		Host:     getEnv("DB_HOST", "localhost"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hospital"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	switch dbConfig.Driver {
	case DriverMySQL:
		dbConfig.Port = getEnv("DB_PORT", "3306")
		dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)
	case DriverPostgres:
		dbConfig.Port = getEnv("DB_PORT", "5432")
		dbConfig.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbConfig.Host, dbConfig.Port, dbConfig.Username, dbConfig.Password, dbConfig.Name, dbConfig.SSLMode)
	case DriverMemory:
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER: %q", dbConfig.Driver)
	}

	noticeSeconds, err := strconv.Atoi(getEnv("NOTICE_TIMEOUT_SECONDS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTICE_TIMEOUT_SECONDS: %w", err)
	}

	tickMillis, err := strconv.Atoi(getEnv("TICK_MILLISECONDS", "250"))
	if err != nil {
		return nil, fmt.Errorf("invalid TICK_MILLISECONDS: %w", err)
	}

	seedDemo, err := strconv.ParseBool(getEnv("SEED_DEMO", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO: %w", err)
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Database:    dbConfig,
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", "hospital-tui.log"),
		},
		NoticeTimeout: time.Duration(noticeSeconds) * time.Second,
		TickInterval:  time.Duration(tickMillis) * time.Millisecond,
		SeedDemo:      seedDemo,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
