package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration, loaded from the environment.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	CacheTTL  time.Duration
	RateLimit int // chart requests per IP per minute
}

// Load reads the configuration, falling back to development defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/cache/contrib.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	ttl := 60
	if raw := os.Getenv("CACHE_TTL_MINUTES"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			ttl = v
		}
	}

	limit := 30
	if raw := os.Getenv("RATE_LIMIT"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: jwtSecret,
		CacheTTL:  time.Duration(ttl) * time.Minute,
		RateLimit: limit,
	}
}
