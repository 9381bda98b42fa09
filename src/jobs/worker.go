package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server consuming background tasks. It blocks, so
// main runs it on its own goroutine, and it is only started when Redis is
// configured.
func StartWorker(redisAddr, uploadDir string) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.Handle(TypeImageCleanup, NewImageCleanupHandler(uploadDir))

	log.Println("🚀 Asynq worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
