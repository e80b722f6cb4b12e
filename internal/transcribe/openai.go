package transcribe

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spec-kit/notes-service/internal/config"
)

// Transcriber converts a stored audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// OpenAITranscriber calls the Whisper transcription API.
type OpenAITranscriber struct {
	client *openai.Client
	model  string
}

// NewOpenAITranscriber builds the client; errors when no API key is set.
func NewOpenAITranscriber(cfg config.TranscriptionConfig) (*OpenAITranscriber, error) {
	if cfg.OpenAIKey == "" {
		return nil, errors.New("OPENAI_KEY not set")
	}
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAITranscriber{client: openai.NewClient(cfg.OpenAIKey), model: model}, nil
}

// Transcribe uploads the audio file and returns the recognized text.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: filePath,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
