package implementation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTodoStore is an in-memory TodoStore with the same stamping behavior as
// the real adapters. failSaveAfter > 0 makes Save fail once that many saves
// have succeeded, to exercise partial push failures.
type fakeTodoStore struct {
	records       map[string]*entity.Todo
	saves         atomic.Int64
	failSaveAfter int64
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{records: map[string]*entity.Todo{}}
}

func (f *fakeTodoStore) List(ctx context.Context, userID string) ([]*entity.Todo, error) {
	out := []*entity.Todo{}
	for _, t := range f.records {
		if t.UserId == userID && !t.IsDeleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTodoStore) ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Todo, error) {
	out := []*entity.Todo{}
	for _, t := range f.records {
		if t.UserId == userID && t.LastSyncTimestamp > watermark {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTodoStore) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	t, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTodoStore) Save(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	if f.failSaveAfter > 0 && f.saves.Load() >= f.failSaveAfter {
		return nil, errors.New("store unavailable")
	}
	f.saves.Add(1)

	now := time.Now().UnixMilli()
	stamped := *todo
	stamped.LastSyncTimestamp = now
	stamped.UpdatedAt = now
	if stamped.Id == "" {
		stamped.Id = uuid.NewString()
		stamped.CreatedAt = now
	}
	f.records[stamped.Id] = &stamped
	return &stamped, nil
}

func (f *fakeTodoStore) Delete(ctx context.Context, id string) error {
	t, ok := f.records[id]
	if !ok {
		return contract.ErrNotFound
	}
	now := time.Now().UnixMilli()
	t.IsDeleted = true
	t.UpdatedAt = now
	t.LastSyncTimestamp = now
	return nil
}

func (f *fakeTodoStore) UpdateCompletion(ctx context.Context, id string, isCompleted bool) error {
	t, ok := f.records[id]
	if !ok {
		return contract.ErrNotFound
	}
	now := time.Now().UnixMilli()
	t.IsCompleted = isCompleted
	t.UpdatedAt = now
	t.LastSyncTimestamp = now
	return nil
}

// fakeLocalTodoStore adds the dirty bookkeeping on top of the shared fake.
type fakeLocalTodoStore struct {
	fakeTodoStore
}

func newFakeLocalTodoStore() *fakeLocalTodoStore {
	return &fakeLocalTodoStore{fakeTodoStore{records: map[string]*entity.Todo{}}}
}

func (f *fakeLocalTodoStore) ListDirty(ctx context.Context, userID string) ([]*entity.Todo, error) {
	out := []*entity.Todo{}
	for _, t := range f.records {
		if t.UserId == userID && t.LastSyncTimestamp < t.UpdatedAt {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeLocalTodoStore) Upsert(ctx context.Context, todo *entity.Todo) error {
	copied := *todo
	f.records[copied.Id] = &copied
	return nil
}

func TestAddTodoAssignsIDAndStamps(t *testing.T) {
	remote := newFakeTodoStore()
	repo := NewTodoRepository(remote, nil, newNopLogger())

	saved, err := repo.AddTodo(context.Background(), &entity.Todo{Title: "buy milk", UserId: "u1"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.Id)
	assert.NotZero(t, saved.CreatedAt)
	assert.Equal(t, saved.UpdatedAt, saved.LastSyncTimestamp)
}

func TestDeleteTodoIsSoftAndVisibleByID(t *testing.T) {
	remote := newFakeTodoStore()
	repo := NewTodoRepository(remote, nil, newNopLogger())
	ctx := context.Background()

	saved, err := repo.AddTodo(ctx, &entity.Todo{Title: "buy milk", UserId: "u1"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTodo(ctx, saved.Id))

	assert.Empty(t, repo.GetTodos(ctx, "u1"))

	got, err := repo.GetTodoByID(ctx, saved.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDeleted)
}

func TestDeleteTodoUnknownID(t *testing.T) {
	repo := NewTodoRepository(newFakeTodoStore(), nil, newNopLogger())
	err := repo.DeleteTodo(context.Background(), "missing")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestSyncWithoutLocalStoreIsNoOp(t *testing.T) {
	repo := NewTodoRepository(newFakeTodoStore(), nil, newNopLogger())
	assert.NoError(t, repo.Sync(context.Background(), "u1", 0))
}

func TestSyncPushesDirtyAndCleansThem(t *testing.T) {
	remote := newFakeTodoStore()
	local := newFakeLocalTodoStore()
	repo := NewTodoRepository(remote, local, newNopLogger())
	ctx := context.Background()

	// A locally edited record: updated after its last push.
	local.records["t1"] = &entity.Todo{
		Id: "t1", Title: "edited offline", UserId: "u1",
		UpdatedAt: 2000, LastSyncTimestamp: 1000,
	}

	require.NoError(t, repo.Sync(ctx, "u1", 0))

	pushed, ok := remote.records["t1"]
	require.True(t, ok)
	assert.Equal(t, "edited offline", pushed.Title)

	// The local copy now carries the refreshed sync stamp.
	mirrored := local.records["t1"]
	assert.False(t, mirrored.Dirty())
}

func TestSyncPushFailureKeepsProgress(t *testing.T) {
	remote := newFakeTodoStore()
	remote.failSaveAfter = 1
	local := newFakeLocalTodoStore()
	repo := NewTodoRepository(remote, local, newNopLogger())
	ctx := context.Background()

	local.records["t1"] = &entity.Todo{Id: "t1", Title: "first", UserId: "u1", UpdatedAt: 2000, LastSyncTimestamp: 1000}
	local.records["t2"] = &entity.Todo{Id: "t2", Title: "second", UserId: "u1", UpdatedAt: 2000, LastSyncTimestamp: 1000}

	err := repo.Sync(ctx, "u1", 0)
	require.Error(t, err)

	// Exactly one record made it through, and its local copy is clean.
	assert.Len(t, remote.records, 1)
	clean := 0
	for _, rec := range local.records {
		if !rec.Dirty() {
			clean++
		}
	}
	assert.Equal(t, 1, clean)
}

func TestSyncPullsRemoteChangesAfterWatermark(t *testing.T) {
	remote := newFakeTodoStore()
	local := newFakeLocalTodoStore()
	repo := NewTodoRepository(remote, local, newNopLogger())
	ctx := context.Background()

	remote.records["old"] = &entity.Todo{Id: "old", UserId: "u1", UpdatedAt: 500, LastSyncTimestamp: 500}
	remote.records["new"] = &entity.Todo{Id: "new", UserId: "u1", UpdatedAt: 1500, LastSyncTimestamp: 1500}
	remote.records["gone"] = &entity.Todo{Id: "gone", UserId: "u1", UpdatedAt: 1600, LastSyncTimestamp: 1600, IsDeleted: true}

	require.NoError(t, repo.Sync(ctx, "u1", 1000))

	_, hasOld := local.records["old"]
	assert.False(t, hasOld, "records at or below the watermark must not be pulled")
	assert.Contains(t, local.records, "new")

	// Deletions propagate: the tombstone arrives and stays out of listings.
	pulledTombstone, hasGone := local.records["gone"]
	require.True(t, hasGone)
	assert.True(t, pulledTombstone.IsDeleted)
	var listedIds []string
	for _, td := range repo.GetTodos(ctx, "u1") {
		listedIds = append(listedIds, td.Id)
	}
	assert.Equal(t, []string{"new"}, listedIds)

	// A second pass with the same watermark is idempotent.
	require.NoError(t, repo.Sync(ctx, "u1", 1000))
	assert.Len(t, local.records, 2)
}

func TestGetTodoUpcomingReadsThroughLocalStore(t *testing.T) {
	remote := newFakeTodoStore()
	local := newFakeLocalTodoStore()
	repo := NewTodoRepository(remote, local, newNopLogger())
	ctx := context.Background()

	now := time.Now()
	deadline := now.Add(2 * time.Hour).UnixMilli()
	startAt := now.UnixMilli()
	local.records["t1"] = &entity.Todo{
		Id: "t1", Title: "today", UserId: "u1",
		StartAt: &startAt, Deadline: &deadline,
	}

	upcoming := repo.GetTodoUpcoming(ctx, "u1", now.UnixMilli())
	require.Len(t, upcoming, 1)
	assert.Equal(t, "t1", upcoming[0].Id)
	assert.Empty(t, repo.GetTodoPast(ctx, "u1", now.UnixMilli()))
}
