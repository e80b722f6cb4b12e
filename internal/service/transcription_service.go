package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/config"
	"github.com/spec-kit/notes-service/internal/domain"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/repository"
	"github.com/spec-kit/notes-service/internal/transcribe"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// TranscriptionService accepts audio uploads and runs them through the
// speech-to-text collaborator, producing a note with the transcript.
type TranscriptionService struct {
	jobs        repository.TranscriptionStore
	notes       repository.NoteRepository
	transcriber transcribe.Transcriber
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	cfg         config.TranscriptionConfig
}

// TranscriptionDependencies bundles collaborators.
type TranscriptionDependencies struct {
	JobStore    repository.TranscriptionStore
	NoteRepo    repository.NoteRepository
	Transcriber transcribe.Transcriber
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewTranscriptionService builds the service.
func NewTranscriptionService(cfg config.TranscriptionConfig, deps TranscriptionDependencies) *TranscriptionService {
	return &TranscriptionService{
		jobs:        deps.JobStore,
		notes:       deps.NoteRepo,
		transcriber: deps.Transcriber,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
		cfg:         cfg,
	}
}

// RegisterHandlers subscribes the job processor to transcription requests.
func (s *TranscriptionService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventTranscriptionRequested, s.handleRequested)
}

// Submit stores the uploaded audio and enqueues a transcription job. The
// returned job is in the QUEUED state.
func (s *TranscriptionService) Submit(ctx context.Context, identity *auth.Identity, filename string, size int64, file io.Reader) (*domain.TranscriptionJob, error) {
	if filename == "" {
		return nil, apperrors.NewValidationError("file is required", nil)
	}
	if s.cfg.MaxUploadBytes > 0 && size > s.cfg.MaxUploadBytes {
		return nil, apperrors.NewValidationError("file too large", map[string]any{"max_bytes": s.cfg.MaxUploadBytes})
	}

	storedPath, err := s.storeUpload(filename, size, file)
	if err != nil {
		return nil, err
	}

	job := &domain.TranscriptionJob{
		ID:         uuid.NewString(),
		OwnerEmail: identity.Email,
		Status:     domain.TranscriptionQueued,
		Filename:   filepath.Base(filename),
		StoredPath: storedPath,
		CreatedAt:  time.Now(),
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("transcription queued",
		zap.String("job_id", job.ID),
		zap.String("email", job.OwnerEmail))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventTranscriptionRequested,
			OwnerEmail: job.OwnerEmail,
			Timestamp:  time.Now(),
			Payload:    events.TranscriptionRequestedPayload{JobID: job.ID},
		})
	}

	// the synchronous dispatcher may have run the job already; report its
	// current state rather than the queued snapshot
	if fresh, err := s.jobs.Get(ctx, job.ID); err == nil {
		job = fresh
	}
	return job, nil
}

// Get returns a job, but only to its owner; anything else is NOT_FOUND.
func (s *TranscriptionService) Get(ctx context.Context, identity *auth.Identity, jobID string) (*domain.TranscriptionJob, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, apperrors.NewNotFound("transcription job", nil)
		}
		return nil, err
	}
	if job.OwnerEmail != identity.Email {
		return nil, apperrors.NewNotFound("transcription job", nil)
	}
	return job, nil
}

func (s *TranscriptionService) storeUpload(filename string, size int64, file io.Reader) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	stored := filepath.Join(s.cfg.UploadDir, uuid.NewString()+filepath.Ext(filename))
	dst, err := os.Create(stored)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	reader := file
	if s.cfg.MaxUploadBytes > 0 {
		reader = io.LimitReader(file, s.cfg.MaxUploadBytes+1)
	}
	written, err := io.Copy(dst, reader)
	if err != nil {
		os.Remove(stored)
		return "", err
	}
	if s.cfg.MaxUploadBytes > 0 && written > s.cfg.MaxUploadBytes {
		os.Remove(stored)
		return "", apperrors.NewValidationError("file too large", map[string]any{"max_bytes": s.cfg.MaxUploadBytes})
	}
	return stored, nil
}

func (s *TranscriptionService) handleRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TranscriptionRequestedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", event.Payload)
	}
	return s.Process(ctx, payload.JobID)
}

// Process runs the external transcription call for a queued job and records
// the outcome. On success the transcript becomes a new note owned by the
// uploader, with the original filename attached.
func (s *TranscriptionService) Process(ctx context.Context, jobID string) error {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}

	job.Status = domain.TranscriptionProcessing
	if err := s.jobs.Save(ctx, job); err != nil {
		return err
	}

	text, err := s.transcriber.Transcribe(ctx, job.StoredPath)
	if err != nil {
		return s.fail(ctx, job, err)
	}

	note := &domain.Note{
		Title:      job.Filename,
		Content:    &text,
		OwnerEmail: job.OwnerEmail,
		Filename:   &job.Filename,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return s.fail(ctx, job, err)
	}

	job.Status = domain.TranscriptionDone
	job.Transcript = text
	job.NoteID = &note.ID
	if err := s.jobs.Save(ctx, job); err != nil {
		return err
	}

	s.logger.Info("transcription completed",
		zap.String("job_id", job.ID),
		zap.Int64("note_id", note.ID))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventTranscriptionCompleted,
			OwnerEmail: job.OwnerEmail,
			Timestamp:  time.Now(),
			Payload:    events.TranscriptionCompletedPayload{JobID: job.ID, NoteID: note.ID},
		})
	}
	return nil
}

func (s *TranscriptionService) fail(ctx context.Context, job *domain.TranscriptionJob, cause error) error {
	s.logger.Error("transcription failed",
		zap.String("job_id", job.ID),
		zap.Error(cause))

	job.Status = domain.TranscriptionFailed
	job.Error = "transcription failed"
	if err := s.jobs.Save(ctx, job); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventTranscriptionFailed,
			OwnerEmail: job.OwnerEmail,
			Timestamp:  time.Now(),
			Payload:    events.TranscriptionFailedPayload{JobID: job.ID, Reason: job.Error},
		})
	}
	return cause
}
