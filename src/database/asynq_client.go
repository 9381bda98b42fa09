package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// InitAsynq initializes the Asynq client only if Redis is available.
func InitAsynq(redisAddr string) *asynq.Client {
	if redisAddr == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	log.Println("✅ Asynq Client initialized successfully")
	return client
}
