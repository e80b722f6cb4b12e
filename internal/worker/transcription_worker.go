package worker

import (
	"github.com/spec-kit/notes-service/internal/service"
)

// StartTranscriptionWorker registers transcription job handlers.
func StartTranscriptionWorker(transcriptionService *service.TranscriptionService) {
	if transcriptionService == nil {
		return
	}
	transcriptionService.RegisterHandlers()
}
