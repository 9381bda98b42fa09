package jobs

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/hibiken/asynq"
)

// ImageCleanupHandler deletes replaced profile pictures from the upload
// directory.
type ImageCleanupHandler struct {
	uploadDir string
}

func NewImageCleanupHandler(uploadDir string) *ImageCleanupHandler {
	return &ImageCleanupHandler{uploadDir: uploadDir}
}

func (h *ImageCleanupHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ImageCleanupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	// the payload carries a bare file name; never follow path separators out
	// of the upload directory
	name := filepath.Base(payload.FileName)
	path := filepath.Join(h.uploadDir, name)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.Println("⚠️ File already gone, skipping:", name)
			return nil
		}
		log.Println("❌ Failed to remove file:", err)
		return err
	}

	log.Println("✅ Removed replaced profile picture:", name)
	return nil
}
