package mapper

import (
	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/model"
)

type DiaryMapper struct{}

func NewDiaryMapper() *DiaryMapper {
	return &DiaryMapper{}
}

func (m *DiaryMapper) ToEntity(d *model.Diary) *entity.Diary {
	if d == nil {
		return nil
	}
	return &entity.Diary{
		Id:                d.Id,
		Title:             d.Title,
		Content:           d.Content,
		Mood:              d.Mood,
		Date:              d.Date,
		UserId:            d.UserId,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		LastSyncTimestamp: d.LastSyncTimestamp,
		IsDeleted:         d.IsDeleted,
	}
}

func (m *DiaryMapper) ToModel(d *entity.Diary) *model.Diary {
	if d == nil {
		return nil
	}
	return &model.Diary{
		Id:                d.Id,
		Title:             d.Title,
		Content:           d.Content,
		Mood:              d.Mood,
		Date:              d.Date,
		UserId:            d.UserId,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		LastSyncTimestamp: d.LastSyncTimestamp,
		IsDeleted:         d.IsDeleted,
	}
}

func (m *DiaryMapper) ToEntities(diaries []*model.Diary) []*entity.Diary {
	entities := make([]*entity.Diary, len(diaries))
	for i, d := range diaries {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
