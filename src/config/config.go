package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup. It is built once in
// main and handed to the database, services and token manager explicitly —
// nothing outside this package reads the environment.
type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	RedisURI       string // optional, enables rate limiting + background jobs
	Port           string
	UploadDir      string
	AllowedOrigins string
	SeedOnStart    bool
}

// Load reads .env (if present) and assembles the Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		DBName:         getEnv("DB_NAME", "StudentHubDB"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RedisURI:       os.Getenv("REDIS_URI"),
		Port:           getEnv("PORT", "4000"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SeedOnStart:    os.Getenv("SEED_ON_START") == "true",
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
