package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeImageCleanup = "image:cleanup"

type ImageCleanupPayload struct {
	FileName string `json:"file_name"`
}

// NewImageCleanupTask builds the task that removes a replaced profile
// picture from disk. FileName is relative to the upload directory.
func NewImageCleanupTask(fileName string) (*asynq.Task, error) {
	payload, err := json.Marshal(ImageCleanupPayload{FileName: fileName})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImageCleanup, payload), nil
}
