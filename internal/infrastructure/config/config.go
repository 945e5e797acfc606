package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // STORE_TIMEZONE must resolve on images without zoneinfo
)

// Config is the process configuration, read from environment variables.
//
// Supported env vars (local-friendly defaults):
//   - PORT (default: 8080)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY (default: us-east-1/local/local)
//   - DYNAMODB_ENDPOINT, S3_ENDPOINT (optional; e.g. http://localstack:4566)
//   - BLOB_BUCKET (default: cardapio-digital), BLOB_PUBLIC_BASE_URL (optional)
//   - USERS_TABLE (default: users), SESSIONS_TABLE (default: sessions)
//   - REDIS_ADDR (optional; carts stay in memory when unset), REDIS_PASSWORD, REDIS_DB
//   - CART_TTL (default: 24h), SESSION_TTL (default: 12h)
//   - ADMIN_API_SECRET (optional; admin write endpoints answer 500 when unset)
//   - ADMIN_BOOTSTRAP_EMAIL, ADMIN_BOOTSTRAP_PASSWORD (optional)
//   - RESTAURANT_NAME, RESTAURANT_WHATSAPP, HANDOFF_BASE_URL (optional overrides)
//   - STORE_TIMEZONE (default: America/Sao_Paulo)
//   - LOG_LEVEL (default: info), LOG_FORMAT (text|json, default: text)
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	S3Endpoint         string

	BlobBucket        string
	BlobPublicBaseURL string

	UsersTable    string
	SessionsTable string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CartTTL       time.Duration
	SessionTTL    time.Duration

	AdminAPISecret         string
	AdminBootstrapEmail    string
	AdminBootstrapPassword string

	RestaurantName     string
	RestaurantWhatsApp string
	HandoffBaseURL     string
	StoreLocation      *time.Location

	LogLevel  string
	LogFormat string
}

// Load reads the configuration. Only malformed values are errors; missing
// ones fall back to defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:     getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		S3Endpoint:             os.Getenv("S3_ENDPOINT"),
		BlobBucket:             getenvDefault("BLOB_BUCKET", "cardapio-digital"),
		BlobPublicBaseURL:      strings.TrimRight(os.Getenv("BLOB_PUBLIC_BASE_URL"), "/"),
		UsersTable:             getenvDefault("USERS_TABLE", "users"),
		SessionsTable:          getenvDefault("SESSIONS_TABLE", "sessions"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		AdminAPISecret:         os.Getenv("ADMIN_API_SECRET"),
		AdminBootstrapEmail:    os.Getenv("ADMIN_BOOTSTRAP_EMAIL"),
		AdminBootstrapPassword: os.Getenv("ADMIN_BOOTSTRAP_PASSWORD"),
		RestaurantName:         os.Getenv("RESTAURANT_NAME"),
		RestaurantWhatsApp:     os.Getenv("RESTAURANT_WHATSAPP"),
		HandoffBaseURL:         os.Getenv("HANDOFF_BASE_URL"),
		LogLevel:               getenvDefault("LOG_LEVEL", "info"),
		LogFormat:              getenvDefault("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getenvDefault("REDIS_DB", "0")); err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.CartTTL, err = time.ParseDuration(getenvDefault("CART_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("invalid CART_TTL: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getenvDefault("SESSION_TTL", "12h")); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.StoreLocation, err = time.LoadLocation(getenvDefault("STORE_TIMEZONE", "America/Sao_Paulo")); err != nil {
		return Config{}, fmt.Errorf("invalid STORE_TIMEZONE: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
