package contract

import (
	"context"

	"todonotediary-be/internal/entity"
)

// DiaryStore mirrors TodoStore for diary entries, plus the calendar and
// search reads the diary screens use.
type DiaryStore interface {
	List(ctx context.Context, userID string) ([]*entity.Diary, error)
	// ListByDate returns entries attributed to the calendar day containing
	// date (entries are stored with Date normalized to local midnight).
	ListByDate(ctx context.Context, userID string, date int64) ([]*entity.Diary, error)
	Search(ctx context.Context, userID, keyword string) ([]*entity.Diary, error)
	ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Diary, error)
	GetByID(ctx context.Context, id string) (*entity.Diary, error)
	Save(ctx context.Context, diary *entity.Diary) (*entity.Diary, error)
	Delete(ctx context.Context, id string) error
}

type LocalDiaryStore interface {
	DiaryStore
	ListDirty(ctx context.Context, userID string) ([]*entity.Diary, error)
	Upsert(ctx context.Context, diary *entity.Diary) error
}
