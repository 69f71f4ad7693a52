package service

import (
	"context"
	"testing"

	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTodoRepo keeps one record and records completion updates.
type stubTodoRepo struct {
	mockTodoRepo
	record           *entity.Todo
	completionSet    *bool
	completionTarget string
}

func (m *stubTodoRepo) GetTodoByID(ctx context.Context, id string) (*entity.Todo, error) {
	if m.record != nil && m.record.Id == id {
		copied := *m.record
		return &copied, nil
	}
	return nil, nil
}

func (m *stubTodoRepo) UpdateTodoCompletion(ctx context.Context, id string, isCompleted bool) error {
	m.completionSet = &isCompleted
	m.completionTarget = id
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateTodoRejectsBlankTitle(t *testing.T) {
	svc := NewTodoService(&stubTodoRepo{}, nil, newNopLogger())

	_, err := svc.Create(context.Background(), "u1", &dto.CreateTodoRequest{
		Title:   "   ",
		StartAt: int64Ptr(1000),
	})
	require.Error(t, err)
	var validationErr *serverutils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestToggleCompletionFlipsCurrentState(t *testing.T) {
	repo := &stubTodoRepo{record: &entity.Todo{Id: "t1", UserId: "u1", IsCompleted: true}}
	svc := NewTodoService(repo, nil, newNopLogger())

	res, err := svc.ToggleCompletion(context.Background(), "u1", "t1")
	require.NoError(t, err)
	require.NotNil(t, repo.completionSet)
	assert.False(t, *repo.completionSet, "a completed todo toggles back to open")
	assert.Equal(t, "t1", repo.completionTarget)
	assert.False(t, res.IsCompleted)
}

func TestToggleCompletionForeignRecordHidden(t *testing.T) {
	repo := &stubTodoRepo{record: &entity.Todo{Id: "t1", UserId: "someone-else"}}
	svc := NewTodoService(repo, nil, newNopLogger())

	_, err := svc.ToggleCompletion(context.Background(), "u1", "t1")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestShowUnknownTodo(t *testing.T) {
	svc := NewTodoService(&stubTodoRepo{}, nil, newNopLogger())
	_, err := svc.Show(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}
