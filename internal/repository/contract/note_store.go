package contract

import (
	"context"

	"todonotediary-be/internal/entity"
)

// NoteStore mirrors TodoStore for notes, plus the category and search reads
// the note screens use.
type NoteStore interface {
	List(ctx context.Context, userID string) ([]*entity.Note, error)
	ListByCategory(ctx context.Context, userID, category string) ([]*entity.Note, error)
	// Search matches the keyword case-insensitively against title or content.
	Search(ctx context.Context, userID, keyword string) ([]*entity.Note, error)
	// Categories returns the distinct categories of the user's non-deleted notes.
	Categories(ctx context.Context, userID string) ([]string, error)
	ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Note, error)
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	Save(ctx context.Context, note *entity.Note) (*entity.Note, error)
	Delete(ctx context.Context, id string) error
}

type LocalNoteStore interface {
	NoteStore
	ListDirty(ctx context.Context, userID string) ([]*entity.Note, error)
	Upsert(ctx context.Context, note *entity.Note) error
}
