package main

import (
	"log"

	"catalog-backend/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr: utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
	}

	log.Printf("[Config] Redis: %s", cfg.RedisAddr)

	return cfg
}
