package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/domain"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/repository"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// NoteService creates and lists notes scoped to the authenticated identity.
type NoteService struct {
	notes      repository.NoteRepository
	dispatcher events.Dispatcher
}

// NewNoteService constructs the service.
func NewNoteService(notes repository.NoteRepository, dispatcher events.Dispatcher) *NoteService {
	return &NoteService{notes: notes, dispatcher: dispatcher}
}

// Create persists a note owned by the caller. The owner always comes from the
// authenticated identity, never from client input.
func (s *NoteService) Create(ctx context.Context, identity *auth.Identity, title string, content *string) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}

	note := &domain.Note{
		Title:      title,
		Content:    content,
		OwnerEmail: identity.Email,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventNoteCreated,
			OwnerEmail: note.OwnerEmail,
			Timestamp:  time.Now(),
			Payload:    events.NoteCreatedPayload{NoteID: note.ID, Title: note.Title},
		})
	}
	return note, nil
}

// List returns the caller's notes in creation order; an empty slice when
// there are none.
func (s *NoteService) List(ctx context.Context, identity *auth.Identity) ([]domain.Note, error) {
	return s.notes.ListByOwner(ctx, identity.Email)
}
