package config

import (
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}

// getDecimalEnv returns nil when the variable is unset or malformed.
func getDecimalEnv(key string) *decimal.Decimal {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		log.Printf("Invalid decimal for %s, ignoring", key)
		return nil
	}
	return &d
}
