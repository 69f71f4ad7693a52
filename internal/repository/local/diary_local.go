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
	"todonotediary-be/pkg/datewindow"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiaryLocalStore struct {
	db     *gorm.DB
	mapper *mapper.DiaryMapper
	loc    *time.Location
}

func NewDiaryLocalStore(db *gorm.DB) contract.LocalDiaryStore {
	return &DiaryLocalStore{
		db:     db,
		mapper: mapper.NewDiaryMapper(),
		loc:    time.Local,
	}
}

func (s *DiaryLocalStore) List(ctx context.Context, userID string) ([]*entity.Diary, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "date", Desc: true},
	)
}

func (s *DiaryLocalStore) ListByDate(ctx context.Context, userID string, date int64) ([]*entity.Diary, error) {
	start, end := datewindow.DayBounds(date, s.loc)
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.DateWithin{Start: start, End: end},
		specification.NotDeleted{},
	)
}

func (s *DiaryLocalStore) Search(ctx context.Context, userID, keyword string) ([]*entity.Diary, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.TitleOrContentLike{Keyword: keyword},
		specification.NotDeleted{},
	)
}

func (s *DiaryLocalStore) ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Diary, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.UpdatedAfter{Watermark: watermark},
	)
}

func (s *DiaryLocalStore) ListDirty(ctx context.Context, userID string) ([]*entity.Diary, error) {
	return s.findAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.Dirty{},
	)
}

func (s *DiaryLocalStore) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Diary, error) {
	var models []*model.Diary
	query := applySpecifications(s.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return s.mapper.ToEntities(models), nil
}

func (s *DiaryLocalStore) GetByID(ctx context.Context, id string) (*entity.Diary, error) {
	var m model.Diary
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.mapper.ToEntity(&m), nil
}

func (s *DiaryLocalStore) Save(ctx context.Context, diary *entity.Diary) (*entity.Diary, error) {
	now := time.Now().UnixMilli()

	stamped := *diary
	stamped.LastSyncTimestamp = now
	stamped.UpdatedAt = now
	if stamped.Date != 0 {
		stamped.Date = datewindow.NormalizeToMidnight(stamped.Date, s.loc)
	}
	if stamped.Id == "" {
		stamped.Id = uuid.NewString()
		stamped.CreatedAt = now
	}
	if err := s.Upsert(ctx, &stamped); err != nil {
		return nil, err
	}
	return &stamped, nil
}

func (s *DiaryLocalStore) Upsert(ctx context.Context, diary *entity.Diary) error {
	m := s.mapper.ToModel(diary)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
}

func (s *DiaryLocalStore) Delete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	res := s.db.WithContext(ctx).Model(&model.Diary{}).
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
