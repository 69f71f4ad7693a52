// Package implementation wires the domain-facing repositories over a remote
// document store and an optional local store. With a local store attached,
// reads are served locally and Sync reconciles the two; without one, every
// call goes straight to the remote store.
package implementation

import (
	"context"
	"time"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/pkg/datewindow"
)

type TodoRepositoryImpl struct {
	remote contract.TodoStore
	local  contract.LocalTodoStore // nil means remote-only mode
	log    logger.ILogger
	loc    *time.Location
	now    func() int64
}

func NewTodoRepository(remote contract.TodoStore, local contract.LocalTodoStore, log logger.ILogger) contract.TodoRepository {
	return &TodoRepositoryImpl{
		remote: remote,
		local:  local,
		log:    log,
		loc:    time.Local,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

func (r *TodoRepositoryImpl) reads() contract.TodoStore {
	if r.local != nil {
		return r.local
	}
	return r.remote
}

func (r *TodoRepositoryImpl) GetTodos(ctx context.Context, userID string) []*entity.Todo {
	todos, err := r.reads().List(ctx, userID)
	if err != nil {
		r.log.Warn("TodoRepository", "todo list degraded to empty", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return []*entity.Todo{}
	}
	return todos
}

func (r *TodoRepositoryImpl) GetTodoUpcoming(ctx context.Context, userID string, selectedDate int64) []*entity.Todo {
	return datewindow.FilterUpcoming(r.GetTodos(ctx, userID), selectedDate, r.now(), r.loc)
}

func (r *TodoRepositoryImpl) GetTodoPast(ctx context.Context, userID string, selectedDate int64) []*entity.Todo {
	return datewindow.FilterPast(r.GetTodos(ctx, userID), selectedDate, r.now(), r.loc)
}

func (r *TodoRepositoryImpl) GetTodoByID(ctx context.Context, id string) (*entity.Todo, error) {
	return r.reads().GetByID(ctx, id)
}

func (r *TodoRepositoryImpl) AddTodo(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	todo.Id = ""
	return r.save(ctx, todo)
}

func (r *TodoRepositoryImpl) UpdateTodo(ctx context.Context, todo *entity.Todo) error {
	_, err := r.save(ctx, todo)
	return err
}

// save writes through the remote store, then mirrors the stamped record into
// the local store when one is attached.
func (r *TodoRepositoryImpl) save(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	saved, err := r.remote.Save(ctx, todo)
	if err != nil {
		return nil, err
	}
	if r.local != nil {
		if err := r.local.Upsert(ctx, saved); err != nil {
			r.log.Warn("TodoRepository", "local mirror write failed", map[string]interface{}{"id": saved.Id, "error": err.Error()})
		}
	}
	return saved, nil
}

func (r *TodoRepositoryImpl) DeleteTodo(ctx context.Context, id string) error {
	if err := r.remote.Delete(ctx, id); err != nil {
		return err
	}
	if r.local != nil {
		if err := r.local.Delete(ctx, id); err != nil && err != contract.ErrNotFound {
			r.log.Warn("TodoRepository", "local delete failed", map[string]interface{}{"id": id, "error": err.Error()})
		}
	}
	return nil
}

func (r *TodoRepositoryImpl) UpdateTodoCompletion(ctx context.Context, id string, isCompleted bool) error {
	if err := r.remote.UpdateCompletion(ctx, id, isCompleted); err != nil {
		return err
	}
	if r.local != nil {
		if err := r.local.UpdateCompletion(ctx, id, isCompleted); err != nil && err != contract.ErrNotFound {
			r.log.Warn("TodoRepository", "local completion update failed", map[string]interface{}{"id": id, "error": err.Error()})
		}
	}
	return nil
}

// Sync pushes dirty local records to the remote store, then pulls remote
// changes newer than the watermark. A push failure aborts the whole pass but
// keeps the progress made so far; pulled records overwrite the local copy
// unconditionally.
func (r *TodoRepositoryImpl) Sync(ctx context.Context, userID string, watermark int64) error {
	if r.local == nil {
		return nil
	}

	dirty, err := r.local.ListDirty(ctx, userID)
	if err != nil {
		return err
	}
	for _, todo := range dirty {
		saved, err := r.remote.Save(ctx, todo)
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
	for _, todo := range pulled {
		if err := r.local.Upsert(ctx, todo); err != nil {
			return err
		}
	}

	r.log.Info("TodoRepository", "todo sync pass finished", map[string]interface{}{
		"user_id": userID,
		"pushed":  len(dirty),
		"pulled":  len(pulled),
	})
	return nil
}
