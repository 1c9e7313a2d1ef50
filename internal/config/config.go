package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppName  string
	Timezone *time.Location
	Seed     SeedConfig
	Report   ReportConfig
}

// SeedConfig holds the default operator accounts created at startup.
// Passwords are plaintext; this system carries no credential security.
type SeedConfig struct {
	AdminPassword   string
	ManagerPassword string
	StaffPassword   string
}

// ReportConfig holds the scheduled revenue report settings
type ReportConfig struct {
	Enabled  bool
	Schedule string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Resolve the calendar timezone - trim spaces for Windows compatibility
	tzName := strings.TrimSpace(getEnv("POS_TIMEZONE", "Local"))
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid POS_TIMEZONE: '%s': %w", tzName, err)
	}

	reportEnabled, _ := strconv.ParseBool(getEnv("POS_REPORT_ENABLED", "false"))

	config := &Config{
		AppName:  getEnv("POS_APP_NAME", "Inventory Management System"),
		Timezone: loc,
		Seed: SeedConfig{
			AdminPassword:   getEnv("POS_ADMIN_PASSWORD", "adminpass"),
			ManagerPassword: getEnv("POS_MANAGER_PASSWORD", "managerpass"),
			StaffPassword:   getEnv("POS_STAFF_PASSWORD", "staffpass"),
		},
		Report: ReportConfig{
			Enabled:  reportEnabled,
			Schedule: getEnv("POS_REPORT_SCHEDULE", "0 21 * * *"),
		},
	}

	log.Printf("✅ Configuration loaded successfully [TZ: %s]", tzName)
	return config, nil
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
