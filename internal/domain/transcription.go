package domain

import "time"

// TranscriptionStatus enumerates lifecycle states for transcription jobs.
type TranscriptionStatus string

const (
	TranscriptionQueued     TranscriptionStatus = "QUEUED"
	TranscriptionProcessing TranscriptionStatus = "PROCESSING"
	TranscriptionDone       TranscriptionStatus = "DONE"
	TranscriptionFailed     TranscriptionStatus = "FAILED"
)

// TranscriptionJob tracks an uploaded audio file through the speech-to-text
// batch call. Jobs are short-lived state, kept in Redis rather than Postgres.
type TranscriptionJob struct {
	ID         string              `json:"id"`
	OwnerEmail string              `json:"owner_email"`
	Status     TranscriptionStatus `json:"status"`
	Filename   string              `json:"filename"`
	StoredPath string              `json:"stored_path"`
	Transcript string              `json:"transcript,omitempty"`
	Error      string              `json:"error,omitempty"`
	NoteID     *int64              `json:"note_id,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}
