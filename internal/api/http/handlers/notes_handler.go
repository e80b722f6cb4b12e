package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notes-service/internal/api/dto"
	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/service"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// NotesHandler exposes note endpoints.
type NotesHandler struct {
	notes *service.NoteService
}

// NewNotesHandler constructs handler.
func NewNotesHandler(notes *service.NoteService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// Create handles POST /notes.
func (h *NotesHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.NoteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	note, err := h.notes.Create(c.Context(), identity, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(dto.NoteFromDomain(*note))
}

// List handles GET /notes.
func (h *NotesHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	notes, err := h.notes.List(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(dto.NotesFromDomain(notes))
}
