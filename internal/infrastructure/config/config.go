// Package config resolves the service settings from the environment once at
// startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required outside debug mode")

// DevJWTSecret signs tokens in debug mode when JWT_SECRET is unset. cmd/devtoken
// uses the same default.
const DevJWTSecret = "loki-local-dev-secret"

type Tables struct {
	Houses       string
	Profiles     string
	Contacts     string
	Payments     string
	Bookings     string
	BookingDates string
}

type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	AutoCreate      bool
	Tables          Tables
}

type Config struct {
	Port                   string
	GinMode                string
	JWTSecret              string
	DevSecret              bool
	CacheTTL               time.Duration
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	DynamoDB               DynamoDB
}

// Load reads the environment. Invalid values fail instead of silently falling
// back to defaults.
func Load() (Config, error) {
	cacheTTL, err := getenvDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	autoCreate, err := getenvBool("DYNAMODB_AUTO_CREATE")
	if err != nil {
		return Config{}, err
	}
	mock, err := getenvBool("PAYMENT_GATEWAY_MOCK")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		GinMode:                getenvDefault("GIN_MODE", "debug"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		CacheTTL:               cacheTTL,
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     mock,
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AutoCreate:      autoCreate,
			Tables: Tables{
				Houses:       getenvDefault("HOUSES_TABLE", "houses"),
				Profiles:     getenvDefault("PROFILES_TABLE", "profiles"),
				Contacts:     getenvDefault("CONTACTS_TABLE", "contacts"),
				Payments:     getenvDefault("PAYMENTS_TABLE", "payments"),
				Bookings:     getenvDefault("BOOKINGS_TABLE", "bookings"),
				BookingDates: getenvDefault("BOOKING_DATES_TABLE", "booking_dates"),
			},
		},
	}
	if cfg.JWTSecret == "" {
		if cfg.GinMode != "debug" {
			return Config{}, ErrMissingJWTSecret
		}
		cfg.JWTSecret = DevJWTSecret
		cfg.DevSecret = true
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getenvBool(key string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return false, nil
	case "mock":
		return true, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
