package local

import (
	"context"
	"errors"
	"time"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/mapper"
	"todonotediary-be/internal/model"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/internal/repository/scope"
	"todonotediary-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteLocalStore struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteLocalStore(db *gorm.DB) contract.LocalNoteStore {
	return &NoteLocalStore{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (s *NoteLocalStore) List(ctx context.Context, userID string) ([]*entity.Note, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *NoteLocalStore) ListByCategory(ctx context.Context, userID, category string) ([]*entity.Note, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.ByCategory{Category: category},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *NoteLocalStore) Search(ctx context.Context, userID, keyword string) ([]*entity.Note, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.TitleOrContentLike{Keyword: keyword},
		specification.NotDeleted{},
	)
}

func (s *NoteLocalStore) Categories(ctx context.Context, userID string) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).Model(&model.Note{}).
		Scopes(scope.ExcludeSoftDeleted).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *NoteLocalStore) ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Note, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.UpdatedAfter{Watermark: watermark},
	)
}

func (s *NoteLocalStore) ListDirty(ctx context.Context, userID string) ([]*entity.Note, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.Dirty{},
	)
}

func (s *NoteLocalStore) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := applySpecifications(s.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return s.mapper.ToEntities(models), nil
}

func (s *NoteLocalStore) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	var m model.Note
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.mapper.ToEntity(&m), nil
}

func (s *NoteLocalStore) Save(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	now := time.Now().UnixMilli()

	stamped := *note
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

func (s *NoteLocalStore) Upsert(ctx context.Context, note *entity.Note) error {
	m := s.mapper.ToModel(note)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (s *NoteLocalStore) Delete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	res := s.db.WithContext(ctx).Model(&model.Note{}).
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
