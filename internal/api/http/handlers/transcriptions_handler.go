package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notes-service/internal/api/dto"
	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/service"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// TranscriptionsHandler exposes audio upload and job status endpoints.
type TranscriptionsHandler struct {
	transcriptions *service.TranscriptionService
}

// NewTranscriptionsHandler constructs handler.
func NewTranscriptionsHandler(transcriptions *service.TranscriptionService) *TranscriptionsHandler {
	return &TranscriptionsHandler{transcriptions: transcriptions}
}

// Upload handles POST /transcriptions with a multipart "file" field.
func (h *TranscriptionsHandler) Upload(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unreadable file", nil)
	}
	defer file.Close()

	job, err := h.transcriptions.Submit(c.Context(), identity, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(dto.TranscriptionFromDomain(*job))
}

// Get handles GET /transcriptions/:id.
func (h *TranscriptionsHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	job, err := h.transcriptions.Get(c.Context(), identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.TranscriptionFromDomain(*job))
}
