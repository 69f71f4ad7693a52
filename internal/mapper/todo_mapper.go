package mapper

import (
	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/model"
)

type TodoMapper struct{}

func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

func (m *TodoMapper) ToEntity(t *model.Todo) *entity.Todo {
	if t == nil {
		return nil
	}
	return &entity.Todo{
		Id:                t.Id,
		Title:             t.Title,
		Description:       t.Description,
		IsCompleted:       t.IsCompleted,
		StartAt:           t.StartAt,
		Deadline:          t.Deadline,
		UserId:            t.UserId,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		LastSyncTimestamp: t.LastSyncTimestamp,
		IsDeleted:         t.IsDeleted,
	}
}

func (m *TodoMapper) ToModel(t *entity.Todo) *model.Todo {
	if t == nil {
		return nil
	}
	return &model.Todo{
		Id:                t.Id,
		Title:             t.Title,
		Description:       t.Description,
		IsCompleted:       t.IsCompleted,
		StartAt:           t.StartAt,
		Deadline:          t.Deadline,
		UserId:            t.UserId,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		LastSyncTimestamp: t.LastSyncTimestamp,
		IsDeleted:         t.IsDeleted,
	}
}

func (m *TodoMapper) ToEntities(todos []*model.Todo) []*entity.Todo {
	entities := make([]*entity.Todo, len(todos))
	for i, t := range todos {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
