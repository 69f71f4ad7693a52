package service

import (
	"context"
	"errors"
	"testing"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func newNopLogger() logger.ILogger { return nopLogger{} }

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// syncRecorder implements the Sync method shared by all three repository
// contracts and records whether it ran.
type syncRecorder struct {
	called bool
	err    error
}

func (r *syncRecorder) Sync(ctx context.Context, userID string, watermark int64) error {
	r.called = true
	return r.err
}

type mockTodoRepo struct{ syncRecorder }

func (m *mockTodoRepo) GetTodos(ctx context.Context, userID string) []*entity.Todo { return nil }
func (m *mockTodoRepo) GetTodoUpcoming(ctx context.Context, userID string, selectedDate int64) []*entity.Todo {
	return nil
}
func (m *mockTodoRepo) GetTodoPast(ctx context.Context, userID string, selectedDate int64) []*entity.Todo {
	return nil
}
func (m *mockTodoRepo) GetTodoByID(ctx context.Context, id string) (*entity.Todo, error) {
	return nil, nil
}
func (m *mockTodoRepo) AddTodo(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	return todo, nil
}
func (m *mockTodoRepo) UpdateTodo(ctx context.Context, todo *entity.Todo) error { return nil }
func (m *mockTodoRepo) DeleteTodo(ctx context.Context, id string) error         { return nil }
func (m *mockTodoRepo) UpdateTodoCompletion(ctx context.Context, id string, isCompleted bool) error {
	return nil
}

type mockNoteRepo struct{ syncRecorder }

func (m *mockNoteRepo) GetNotes(ctx context.Context, userID string) []*entity.Note { return nil }
func (m *mockNoteRepo) GetNotesByCategory(ctx context.Context, userID, category string) []*entity.Note {
	return nil
}
func (m *mockNoteRepo) SearchNotes(ctx context.Context, userID, keyword string) []*entity.Note {
	return nil
}
func (m *mockNoteRepo) GetCategories(ctx context.Context, userID string) []string { return nil }
func (m *mockNoteRepo) GetNoteByID(ctx context.Context, id string) (*entity.Note, error) {
	return nil, nil
}
func (m *mockNoteRepo) AddNote(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	return note, nil
}
func (m *mockNoteRepo) UpdateNote(ctx context.Context, note *entity.Note) error { return nil }
func (m *mockNoteRepo) DeleteNote(ctx context.Context, id string) error         { return nil }

type mockDiaryRepo struct{ syncRecorder }

func (m *mockDiaryRepo) GetDiaries(ctx context.Context, userID string) []*entity.Diary { return nil }
func (m *mockDiaryRepo) GetDiariesByDate(ctx context.Context, userID string, date int64) []*entity.Diary {
	return nil
}
func (m *mockDiaryRepo) SearchDiaries(ctx context.Context, userID, keyword string) []*entity.Diary {
	return nil
}
func (m *mockDiaryRepo) GetDiaryByID(ctx context.Context, id string) (*entity.Diary, error) {
	return nil, nil
}
func (m *mockDiaryRepo) AddDiary(ctx context.Context, diary *entity.Diary) (*entity.Diary, error) {
	return diary, nil
}
func (m *mockDiaryRepo) UpdateDiary(ctx context.Context, diary *entity.Diary) error { return nil }
func (m *mockDiaryRepo) DeleteDiary(ctx context.Context, id string) error           { return nil }

type memWatermarkStore struct {
	values map[string]int64
}

func newMemWatermarkStore() *memWatermarkStore {
	return &memWatermarkStore{values: map[string]int64{}}
}

func (s *memWatermarkStore) Get(ctx context.Context, userID string) (int64, error) {
	return s.values[userID], nil
}

func (s *memWatermarkStore) Save(ctx context.Context, userID string, timestamp int64) error {
	s.values[userID] = timestamp
	return nil
}

func TestSyncAllAdvancesWatermark(t *testing.T) {
	todos := &mockTodoRepo{}
	notes := &mockNoteRepo{}
	diaries := &mockDiaryRepo{}
	watermarks := newMemWatermarkStore()

	svc := NewSyncService(todos, notes, diaries, watermarks, nil, newNopLogger())

	res, err := svc.SyncAll(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, todos.called)
	assert.True(t, notes.called)
	assert.True(t, diaries.called)
	assert.Greater(t, res.Watermark, int64(0))
	assert.Equal(t, res.Watermark, watermarks.values["u1"])
}

func TestSyncAllShortCircuitsOnTodoFailure(t *testing.T) {
	todos := &mockTodoRepo{syncRecorder{err: errors.New("push failed")}}
	notes := &mockNoteRepo{}
	diaries := &mockDiaryRepo{}
	watermarks := newMemWatermarkStore()
	watermarks.values["u1"] = 1234

	svc := NewSyncService(todos, notes, diaries, watermarks, nil, newNopLogger())

	_, err := svc.SyncAll(context.Background(), "u1")
	require.Error(t, err)

	// Notes and diaries never ran, and the watermark did not move.
	assert.False(t, notes.called)
	assert.False(t, diaries.called)
	assert.Equal(t, int64(1234), watermarks.values["u1"])
}

func TestSyncAllShortCircuitsOnNoteFailure(t *testing.T) {
	todos := &mockTodoRepo{}
	notes := &mockNoteRepo{syncRecorder{err: errors.New("push failed")}}
	diaries := &mockDiaryRepo{}
	watermarks := newMemWatermarkStore()

	svc := NewSyncService(todos, notes, diaries, watermarks, nil, newNopLogger())

	_, err := svc.SyncAll(context.Background(), "u1")
	require.Error(t, err)
	assert.True(t, todos.called)
	assert.False(t, diaries.called)
}
