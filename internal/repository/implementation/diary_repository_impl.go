package implementation

import (
	"context"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
)

type DiaryRepositoryImpl struct {
	remote contract.DiaryStore
	local  contract.LocalDiaryStore // nil means remote-only mode
	log    logger.ILogger
}

func NewDiaryRepository(remote contract.DiaryStore, local contract.LocalDiaryStore, log logger.ILogger) contract.DiaryRepository {
	return &DiaryRepositoryImpl{
		remote: remote,
		local:  local,
		log:    log,
	}
}

func (r *DiaryRepositoryImpl) reads() contract.DiaryStore {
	if r.local != nil {
		return r.local
	}
	return r.remote
}

func (r *DiaryRepositoryImpl) GetDiaries(ctx context.Context, userID string) []*entity.Diary {
	diaries, err := r.reads().List(ctx, userID)
	if err != nil {
		r.log.Warn("DiaryRepository", "diary list degraded to empty", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return []*entity.Diary{}
	}
	return diaries
}

func (r *DiaryRepositoryImpl) GetDiariesByDate(ctx context.Context, userID string, date int64) []*entity.Diary {
	diaries, err := r.reads().ListByDate(ctx, userID, date)
	if err != nil {
		r.log.Warn("DiaryRepository", "diary date query degraded to empty", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return []*entity.Diary{}
	}
	return diaries
}

func (r *DiaryRepositoryImpl) SearchDiaries(ctx context.Context, userID, keyword string) []*entity.Diary {
	diaries, err := r.reads().Search(ctx, userID, keyword)
	if err != nil {
		r.log.Warn("DiaryRepository", "diary search degraded to empty", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return []*entity.Diary{}
	}
	return diaries
}

func (r *DiaryRepositoryImpl) GetDiaryByID(ctx context.Context, id string) (*entity.Diary, error) {
	return r.reads().GetByID(ctx, id)
}

func (r *DiaryRepositoryImpl) AddDiary(ctx context.Context, diary *entity.Diary) (*entity.Diary, error) {
	diary.Id = ""
	return r.save(ctx, diary)
}

func (r *DiaryRepositoryImpl) UpdateDiary(ctx context.Context, diary *entity.Diary) error {
	_, err := r.save(ctx, diary)
	return err
}

func (r *DiaryRepositoryImpl) save(ctx context.Context, diary *entity.Diary) (*entity.Diary, error) {
	saved, err := r.remote.Save(ctx, diary)
	if err != nil {
		return nil, err
	}
	if r.local != nil {
		if err := r.local.Upsert(ctx, saved); err != nil {
			r.log.Warn("DiaryRepository", "local mirror write failed", map[string]interface{}{"id": saved.Id, "error": err.Error()})
		}
	}
	return saved, nil
}

func (r *DiaryRepositoryImpl) DeleteDiary(ctx context.Context, id string) error {
	if err := r.remote.Delete(ctx, id); err != nil {
		return err
	}
	if r.local != nil {
		if err := r.local.Delete(ctx, id); err != nil && err != contract.ErrNotFound {
			r.log.Warn("DiaryRepository", "local delete failed", map[string]interface{}{"id": id, "error": err.Error()})
		}
	}
	return nil
}

func (r *DiaryRepositoryImpl) Sync(ctx context.Context, userID string, watermark int64) error {
	if r.local == nil {
		return nil
	}

	dirty, err := r.local.ListDirty(ctx, userID)
	if err != nil {
		return err
	}
	for _, diary := range dirty {
		saved, err := r.remote.Save(ctx, diary)
		if err != nil {
			return err
		}
		if err := r.local.Upsert(ctx, saved); err != nil {
			return err
		}
	}

	pulled, err := r.remote.ListUpdatedAfter(ctx, userID, watermark)
	if err != nil {
		return err
	}
	for _, diary := range pulled {
		if err := r.local.Upsert(ctx, diary); err != nil {
			return err
		}
	}

	r.log.Info("DiaryRepository", "diary sync pass finished", map[string]interface{}{
		"user_id": userID,
		"pushed":  len(dirty),
		"pulled":  len(pulled),
	})
	return nil
}
