package contract

import (
	"context"

	"todonotediary-be/internal/entity"
)

type NoteRepository interface {
	GetNotes(ctx context.Context, userID string) []*entity.Note
	GetNotesByCategory(ctx context.Context, userID, category string) []*entity.Note
	SearchNotes(ctx context.Context, userID, keyword string) []*entity.Note
	GetCategories(ctx context.Context, userID string) []string
	GetNoteByID(ctx context.Context, id string) (*entity.Note, error)
	AddNote(ctx context.Context, note *entity.Note) (*entity.Note, error)
	UpdateNote(ctx context.Context, note *entity.Note) error
	DeleteNote(ctx context.Context, id string) error
	Sync(ctx context.Context, userID string, watermark int64) error
}
