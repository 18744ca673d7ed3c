package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Billing  BillingConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// BillingConfig holds the billing constants: water rates, the premium room
// list, and the fixed utility surcharge added to every Paid total
type BillingConfig struct {
	StandardWaterRate float64
	PremiumWaterRate  float64
	PremiumRooms      []string
	UtilitySurcharge  int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	// Build config based on APP_MODE
	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		Billing:  loadBillingConfig(),
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "rentmate"),
	}
}

// loadBillingConfig loads billing constants. Rates are per water unit;
// the surcharge is a flat amount per paid month.
func loadBillingConfig() BillingConfig {
	standard, _ := strconv.ParseFloat(getEnv("WATER_RATE_STANDARD", "0.25"), 64)
	premium, _ := strconv.ParseFloat(getEnv("WATER_RATE_PREMIUM", "0.35"), 64)
	surcharge, _ := strconv.Atoi(getEnv("UTILITY_SURCHARGE", "100"))

	var premiumRooms []string
	for _, r := range strings.Split(getEnv("PREMIUM_ROOMS", "204,205"), ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			premiumRooms = append(premiumRooms, r)
		}
	}

	return BillingConfig{
		StandardWaterRate: standard,
		PremiumWaterRate:  premium,
		PremiumRooms:      premiumRooms,
		UtilitySurcharge:  surcharge,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://rentmate.app"
	}
	return origins
}
