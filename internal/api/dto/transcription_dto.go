package dto

import (
	"time"

	"github.com/spec-kit/notes-service/internal/domain"
)

// TranscriptionResponse reports job state to the uploader.
type TranscriptionResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Filename   string    `json:"filename"`
	Transcript string    `json:"transcript,omitempty"`
	Error      string    `json:"error,omitempty"`
	NoteID     *int64    `json:"note_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TranscriptionFromDomain converts a job for the wire.
func TranscriptionFromDomain(job domain.TranscriptionJob) TranscriptionResponse {
	return TranscriptionResponse{
		ID:         job.ID,
		Status:     string(job.Status),
		Filename:   job.Filename,
		Transcript: job.Transcript,
		Error:      job.Error,
		NoteID:     job.NoteID,
		CreatedAt:  job.CreatedAt,
	}
}
