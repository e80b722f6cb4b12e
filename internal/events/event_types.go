package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventNoteCreated            EventType = "note_created"
	EventTranscriptionRequested EventType = "transcription_requested"
	EventTranscriptionCompleted EventType = "transcription_completed"
	EventTranscriptionFailed    EventType = "transcription_failed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	OwnerEmail string      `json:"owner_email"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// NoteCreatedPayload payload.
type NoteCreatedPayload struct {
	NoteID int64  `json:"note_id"`
	Title  string `json:"title"`
}

// TranscriptionRequestedPayload payload.
type TranscriptionRequestedPayload struct {
	JobID string `json:"job_id"`
}

// TranscriptionCompletedPayload payload.
type TranscriptionCompletedPayload struct {
	JobID  string `json:"job_id"`
	NoteID int64  `json:"note_id"`
}

// TranscriptionFailedPayload payload.
type TranscriptionFailedPayload struct {
	JobID  string `json:"job_id"`
	Reason string `json:"reason"`
}
