package uploads

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"Backend-StudentHub/src/jobs"
	"Backend-StudentHub/src/services/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// PublicPrefix is the URL prefix uploaded files are served from.
const PublicPrefix = "/uploads/"

// Service stores profile pictures on disk and hands out their public paths.
// Replaced files are cleaned up by a background task when asynq is available.
type Service struct {
	dir   string
	asynq *asynq.Client
}

func NewService(dir string, client *asynq.Client) *Service {
	return &Service{dir: dir, asynq: client}
}

// Save stores the first file of the multipart form, whatever its field name,
// under a freshly generated name. Every upload gets a new name, so repeated
// uploads never overwrite each other.
func (s *Service) Save(c *fiber.Ctx) (string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", apperrors.ErrNoFile
	}

	var file *multipart.FileHeader
	for _, headers := range form.File {
		if len(headers) > 0 {
			file = headers[0]
			break
		}
	}
	if file == nil {
		return "", apperrors.ErrNoFile
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(s.dir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return PublicPrefix + fileName, nil
}

// ScheduleCleanup enqueues removal of a replaced picture. Best effort — with
// no asynq client the orphaned file is simply left behind.
func (s *Service) ScheduleCleanup(publicPath string) {
	if s.asynq == nil || publicPath == "" || !strings.HasPrefix(publicPath, PublicPrefix) {
		return
	}

	task, err := jobs.NewImageCleanupTask(strings.TrimPrefix(publicPath, PublicPrefix))
	if err != nil {
		log.Println("⚠️ Failed to build image cleanup task:", err)
		return
	}
	if _, err := s.asynq.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue image cleanup task:", err)
	}
}
