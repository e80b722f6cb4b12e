package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/notes-service/internal/domain"
)

// In-memory implementations used by tests. They honor the same contracts as
// the Postgres-backed ones: pgx.ErrNoRows for missing rows, ErrDuplicateEmail
// on a duplicate insert, ascending IDs.

type InMemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]domain.User)}
}

func (r *InMemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return ErrDuplicateEmail
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.Email] = *user
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

type InMemoryNoteRepository struct {
	mu     sync.Mutex
	nextID int64
	notes  []domain.Note
}

func NewInMemoryNoteRepository() *InMemoryNoteRepository {
	return &InMemoryNoteRepository{}
}

func (r *InMemoryNoteRepository) Create(_ context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	note.ID = r.nextID
	note.CreatedAt = time.Now()
	r.notes = append(r.notes, *note)
	return nil
}

func (r *InMemoryNoteRepository) ListByOwner(_ context.Context, ownerEmail string) ([]domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Note{}
	for _, note := range r.notes {
		if note.OwnerEmail == ownerEmail {
			out = append(out, note)
		}
	}
	return out, nil
}

func (r *InMemoryNoteRepository) AttachFilename(_ context.Context, noteID int64, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notes {
		if r.notes[i].ID == noteID {
			r.notes[i].Filename = &filename
			return nil
		}
	}
	return pgx.ErrNoRows
}

type InMemoryTranscriptionStore struct {
	mu   sync.Mutex
	jobs map[string]domain.TranscriptionJob
}

func NewInMemoryTranscriptionStore() *InMemoryTranscriptionStore {
	return &InMemoryTranscriptionStore{jobs: make(map[string]domain.TranscriptionJob)}
}

func (s *InMemoryTranscriptionStore) Save(_ context.Context, job *domain.TranscriptionJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = *job
	return nil
}

func (s *InMemoryTranscriptionStore) Get(_ context.Context, id string) (*domain.TranscriptionJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return &job, nil
}
