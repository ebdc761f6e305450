package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	App      AppConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	Path     string // sqlite file
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	LogLevel string // silent, error, warn, info
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string
	Port        string
	CORSOrigins []string
}

// Load reads configuration from configs/.env (when present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(filepath.Join("configs", ".env")); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:     getEnv("DB_PATH", "musicshop.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "musicshop"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			LogLevel: strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		},
		App: AppConfig{
			Environment: getEnv("GIN_MODE", "debug"),
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		},
	}

	if cfg.Database.Driver != DriverSQLite && cfg.Database.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q: must be %s or %s", cfg.Database.Driver, DriverSQLite, DriverPostgres)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.DBName + "?sslmode=" + c.SSLMode
	}
	return c.Path
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
