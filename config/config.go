package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/pricing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	// Catalog
	CatalogFile string // empty = built-in catalog
	// Pricing
	PricingProfile        string
	FreeShippingThreshold *decimal.Decimal // overrides the profile when set
	FlatShippingFee       *decimal.Decimal
	// Sessions
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
	// Business Rules
	StrictLookups bool
	// Rate Limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() (*Config, error) {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env is optional, system env vars win in containers.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		CatalogFile:   getEnv("CATALOG_FILE", ""),

		PricingProfile:        getEnv("PRICING_PROFILE", domain.PricingProfileStandard),
		FreeShippingThreshold: getDecimalEnv("FREE_SHIPPING_THRESHOLD"),
		FlatShippingFee:       getDecimalEnv("FLAT_SHIPPING_FEE"),

		// Sessions: 2h idle lifetime, sweep every 10m
		SessionTTL:             getDurationEnv("SESSION_TTL", 2*time.Hour),
		SessionCleanupInterval: getDurationEnv("SESSION_CLEANUP_INTERVAL", 10*time.Minute),

		StrictLookups: getBoolEnv("STRICT_LOOKUPS", false),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Pricing(); err != nil {
		return err
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v rps burst %d", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// Pricing resolves the profile and applies any explicit threshold/fee overrides.
func (c *Config) Pricing() (domain.PricingConfig, error) {
	base, err := pricing.ProfileByName(c.PricingProfile)
	if err != nil {
		return domain.PricingConfig{}, err
	}

	threshold := base.FreeShippingThreshold
	if c.FreeShippingThreshold != nil {
		threshold = *c.FreeShippingThreshold
	}
	fee := base.FlatShippingFee
	if c.FlatShippingFee != nil {
		fee = *c.FlatShippingFee
	}
	return pricing.NewConfig(threshold, fee)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Invalid bool for %s, using fallback", key)
	}
	return fallback
}
