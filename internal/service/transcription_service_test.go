package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/config"
	"github.com/spec-kit/notes-service/internal/domain"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/repository"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func newTranscriptionService(t *testing.T, tr *stubTranscriber) (*TranscriptionService, *repository.InMemoryNoteRepository) {
	t.Helper()
	notes := repository.NewInMemoryNoteRepository()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewTranscriptionService(config.TranscriptionConfig{
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
	}, TranscriptionDependencies{
		JobStore:    repository.NewInMemoryTranscriptionStore(),
		NoteRepo:    notes,
		Transcriber: tr,
		Dispatcher:  dispatcher,
		Logger:      zap.NewNop(),
	})
	svc.RegisterHandlers()
	return svc, notes
}

func TestTranscription_SubmitAndProcess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	alice := &auth.Identity{Email: "alice@example.com"}
	svc, notes := newTranscriptionService(t, &stubTranscriber{text: "hello from audio"})

	job, err := svc.Submit(ctx, alice, "memo.mp3", 5, strings.NewReader("audio"))
	require.NoError(t, err)
	assert.Equal(t, "memo.mp3", job.Filename)
	_, statErr := os.Stat(job.StoredPath)
	require.NoError(t, statErr)

	// the synchronous dispatcher ran the job during Submit, and Submit
	// reports the post-run state
	assert.Equal(t, domain.TranscriptionDone, job.Status)

	done, err := svc.Get(ctx, alice, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TranscriptionDone, done.Status)
	assert.Equal(t, "hello from audio", done.Transcript)
	require.NotNil(t, done.NoteID)

	owned, err := notes.ListByOwner(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.NotNil(t, owned[0].Content)
	assert.Equal(t, "hello from audio", *owned[0].Content)
	require.NotNil(t, owned[0].Filename)
	assert.Equal(t, "memo.mp3", *owned[0].Filename)
}

func TestTranscription_FailureMarksJobFailed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	alice := &auth.Identity{Email: "alice@example.com"}
	svc, notes := newTranscriptionService(t, &stubTranscriber{err: errors.New("api down")})

	job, err := svc.Submit(ctx, alice, "memo.mp3", 5, strings.NewReader("audio"))
	require.NoError(t, err)
	assert.Equal(t, domain.TranscriptionFailed, job.Status)

	failed, err := svc.Get(ctx, alice, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TranscriptionFailed, failed.Status)
	assert.NotContains(t, failed.Error, "api down", "provider error text must not leak")

	owned, err := notes.ListByOwner(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestTranscription_GetScopedToOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	alice := &auth.Identity{Email: "alice@example.com"}
	bob := &auth.Identity{Email: "bob@example.com"}
	svc, _ := newTranscriptionService(t, &stubTranscriber{text: "x"})

	job, err := svc.Submit(ctx, alice, "memo.mp3", 5, strings.NewReader("audio"))
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob, job.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)

	_, err = svc.Get(ctx, alice, "no-such-job")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestTranscription_RejectsOversizedUpload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	alice := &auth.Identity{Email: "alice@example.com"}
	svc, _ := newTranscriptionService(t, &stubTranscriber{text: "x"})

	_, err := svc.Submit(ctx, alice, "big.mp3", 2<<20, strings.NewReader("payload"))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
