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
	AppMode string
	Port    string
	JWT     JWTConfig
	Seed    SeedConfig
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret       string
	TokenMinutes int
}

// SeedConfig holds the default front-desk account ensured at startup
type SeedConfig struct {
	UserEmail    string
	UserPassword string
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

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "5001"),
		JWT:     loadJWTConfig(appMode),
		Seed:    loadSeedConfig(),
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadJWTConfig loads session token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	// Sessions last one hour unless overridden
	tokenMins, _ := strconv.Atoi(getEnv("TOKEN_MINUTES", "60"))
	if tokenMins <= 0 {
		tokenMins = 60
	}

	return JWTConfig{
		Secret:       getEnv(prefix+"JWT_SECRET", "default_secret"),
		TokenMinutes: tokenMins,
	}
}

// loadSeedConfig loads the default user credentials (dev/testing)
func loadSeedConfig() SeedConfig {
	return SeedConfig{
		UserEmail:    getEnv("SEED_USER_EMAIL", "reception@hotel.com"),
		UserPassword: getEnv("SEED_USER_PASSWORD", "password123"),
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
		return "https://frontdesk.hotel.example"
	}
	return origins
}
