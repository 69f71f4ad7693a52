package contract

import (
	"context"

	"todonotediary-be/internal/entity"
)

type DiaryRepository interface {
	GetDiaries(ctx context.Context, userID string) []*entity.Diary
	GetDiariesByDate(ctx context.Context, userID string, date int64) []*entity.Diary
	SearchDiaries(ctx context.Context, userID, keyword string) []*entity.Diary
	GetDiaryByID(ctx context.Context, id string) (*entity.Diary, error)
	AddDiary(ctx context.Context, diary *entity.Diary) (*entity.Diary, error)
	UpdateDiary(ctx context.Context, diary *entity.Diary) error
	DeleteDiary(ctx context.Context, id string) error
	Sync(ctx context.Context, userID string, watermark int64) error
}
