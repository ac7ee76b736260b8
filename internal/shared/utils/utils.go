package utils

import (
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseFloatToDecimal converts a request float into the decimal type the
// entities store prices in.
func ParseFloatToDecimal(number float64) decimal.Decimal {
	return decimal.NewFromFloat(number)
}

// ParseStringToUUID parses s, returning uuid.Nil for anything invalid.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return uid
}
