package dto

import (
	"time"

	"github.com/spec-kit/notes-service/internal/domain"
)

// NoteCreateRequest payload for new notes.
type NoteCreateRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// NoteResponse mirrors a persisted note.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Filename  *string   `json:"filename,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteFromDomain converts a domain note for the wire.
func NoteFromDomain(note domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Filename:  note.Filename,
		CreatedAt: note.CreatedAt,
	}
}

// NotesFromDomain converts a slice of domain notes.
func NotesFromDomain(notes []domain.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, NoteFromDomain(note))
	}
	return out
}
