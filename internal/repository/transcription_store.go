package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/notes-service/internal/domain"
)

// ErrJobNotFound is returned when a transcription job is absent or expired.
var ErrJobNotFound = errors.New("transcription job not found")

// TranscriptionStore keeps transcription job state. Jobs are ephemeral, so
// they live in Redis with a TTL rather than in Postgres.
type TranscriptionStore interface {
	Save(ctx context.Context, job *domain.TranscriptionJob) error
	Get(ctx context.Context, id string) (*domain.TranscriptionJob, error)
}

type transcriptionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTranscriptionStore returns a Redis-backed implementation.
func NewTranscriptionStore(client *redis.Client, ttl time.Duration) TranscriptionStore {
	return &transcriptionStore{client: client, ttl: ttl}
}

func jobKey(id string) string {
	return "transcription:job:" + id
}

func (s *transcriptionStore) Save(ctx context.Context, job *domain.TranscriptionJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, jobKey(job.ID), payload, s.ttl).Err()
}

func (s *transcriptionStore) Get(ctx context.Context, id string) (*domain.TranscriptionJob, error) {
	payload, err := s.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	var job domain.TranscriptionJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
