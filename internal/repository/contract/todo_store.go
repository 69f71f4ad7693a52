package contract

import (
	"context"

	"todonotediary-be/internal/entity"
)

// TodoStore is the capability interface over a todo collection. The remote
// implementation degrades read failures to empty results (never a transport
// error); write failures always surface. The local implementation reports
// read errors normally, the repository layer decides what degrades.
type TodoStore interface {
	// List returns the user's todos excluding soft-deleted ones.
	List(ctx context.Context, userID string) ([]*entity.Todo, error)
	// ListUpdatedAfter returns todos whose lastSyncTimestamp is strictly
	// greater than watermark, including soft-deleted ones so deletions
	// propagate on pull.
	ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Todo, error)
	GetByID(ctx context.Context, id string) (*entity.Todo, error)
	// Save upserts. An empty id means "assign a fresh document id". The
	// returned record carries the assigned id and the refreshed
	// lastSyncTimestamp stamped by the store.
	Save(ctx context.Context, todo *entity.Todo) (*entity.Todo, error)
	// Delete soft-deletes: it flips isDeleted and refreshes updatedAt and
	// lastSyncTimestamp without removing the document.
	Delete(ctx context.Context, id string) error
	UpdateCompletion(ctx context.Context, id string, isCompleted bool) error
}

// LocalTodoStore adds the bookkeeping the sync algorithm needs on the
// on-device side of the pair.
type LocalTodoStore interface {
	TodoStore
	// ListDirty returns records with unpushed local changes
	// (lastSyncTimestamp < updatedAt).
	ListDirty(ctx context.Context, userID string) ([]*entity.Todo, error)
	// Upsert writes the record as-is, without stamping timestamps. Used by
	// the pull phase where the remote copy wins unconditionally.
	Upsert(ctx context.Context, todo *entity.Todo) error
}
