package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/notes-service/internal/domain"
)

// NoteRepository encapsulates note persistence.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Note, error)
	AttachFilename(ctx context.Context, noteID int64, filename string) error
}

type noteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository instantiates repository.
func NewNoteRepository(pool *pgxpool.Pool) NoteRepository {
	return &noteRepository{pool: pool}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	const query = `
        INSERT INTO notes (title, content, owner_email, filename)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		note.Title,
		note.Content,
		note.OwnerEmail,
		note.Filename,
	).Scan(&note.ID, &note.CreatedAt)
}

// ListByOwner returns the owner's notes in insertion order.
func (r *noteRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Note, error) {
	const query = `
        SELECT id, title, content, owner_email, filename, created_at
        FROM notes WHERE owner_email=$1 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.OwnerEmail,
			&note.Filename,
			&note.CreatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *noteRepository) AttachFilename(ctx context.Context, noteID int64, filename string) error {
	const query = `UPDATE notes SET filename=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, filename, noteID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
