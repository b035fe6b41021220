package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded from the environment with an
// optional .env file for development.
type Config struct {
	Port        int
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	FilesBucket    string

	JWTSecret     string
	AdminUser     string
	AdminPassword string

	LowStockThreshold int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := &Config{
		Port:              getInt("PORT", 8080),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         getString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getInt("REDIS_DB", 0),
		MinioEndpoint:     getString("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:    getString("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey:    getString("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:       os.Getenv("MINIO_USE_SSL") == "true",
		FilesBucket:       getString("MINIO_FILES_BUCKET", "stockit-files"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUser:         getString("ADMIN_USER", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		LowStockThreshold: getInt("LOW_STOCK_THRESHOLD", 5),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable is required")
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
