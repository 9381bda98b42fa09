package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis when REDIS_URI is configured. Returns nil when
// it is not — callers treat a nil client as "feature disabled".
func InitRedis(addr string) *redis.Client {
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set, rate limiting and background jobs disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		return nil
	}

	log.Println("✅ Redis connected successfully")
	return client
}
