// Package local implements the on-device side of the store pair on a
// relational database. Unlike the remote adapters, reads here surface errors;
// the repository layer decides what degrades.
package local

import (
	"context"
	"errors"
	"time"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/mapper"
	"todonotediary-be/internal/model"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TodoLocalStore struct {
	db     *gorm.DB
	mapper *mapper.TodoMapper
}

func NewTodoLocalStore(db *gorm.DB) contract.LocalTodoStore {
	return &TodoLocalStore{
		db:     db,
		mapper: mapper.NewTodoMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (s *TodoLocalStore) List(ctx context.Context, userID string) ([]*entity.Todo, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *TodoLocalStore) ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Todo, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.UpdatedAfter{Watermark: watermark},
	)
}

func (s *TodoLocalStore) ListDirty(ctx context.Context, userID string) ([]*entity.Todo, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.Dirty{},
	)
}

func (s *TodoLocalStore) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Todo, error) {
	var models []*model.Todo
	query := applySpecifications(s.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return s.mapper.ToEntities(models), nil
}

// GetByID deliberately returns soft-deleted rows too: the sync algorithm
// needs to see a record through its deletion.
func (s *TodoLocalStore) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	var m model.Todo
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.mapper.ToEntity(&m), nil
}

func (s *TodoLocalStore) Save(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	now := time.Now().UnixMilli()

	stamped := *todo
	stamped.LastSyncTimestamp = now
	stamped.UpdatedAt = now
	if stamped.Id == "" {
		stamped.Id = uuid.NewString()
		stamped.CreatedAt = now
	}
	if err := s.Upsert(ctx, &stamped); err != nil {
		return nil, err
	}
	return &stamped, nil
}

// Upsert writes the record exactly as given, without stamping. The pull phase
// relies on this to mirror the remote copy verbatim.
func (s *TodoLocalStore) Upsert(ctx context.Context, todo *entity.Todo) error {
	m := s.mapper.ToModel(todo)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (s *TodoLocalStore) Delete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	res := s.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_deleted":          true,
			"updated_at":          now,
			"last_sync_timestamp": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (s *TodoLocalStore) UpdateCompletion(ctx context.Context, id string, isCompleted bool) error {
	now := time.Now().UnixMilli()
	res := s.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_completed":        isCompleted,
			"updated_at":          now,
			"last_sync_timestamp": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}
