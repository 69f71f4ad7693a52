package contract

import (
	"context"

	"todonotediary-be/internal/entity"
)

// TodoRepository is the domain-facing contract. List-style reads are
// snapshot queries that degrade to an empty slice on any underlying failure;
// callers never see a transport error from them. Writes surface errors.
type TodoRepository interface {
	GetTodos(ctx context.Context, userID string) []*entity.Todo
	// GetTodoUpcoming returns the todos attributed to the day containing
	// selectedDate that are still upcoming now (deadline not passed, not
	// completed), in display order.
	GetTodoUpcoming(ctx context.Context, userID string, selectedDate int64) []*entity.Todo
	GetTodoPast(ctx context.Context, userID string, selectedDate int64) []*entity.Todo
	// GetTodoByID returns (nil, nil) when the id is unknown. Soft-deleted
	// records are still returned.
	GetTodoByID(ctx context.Context, id string) (*entity.Todo, error)
	AddTodo(ctx context.Context, todo *entity.Todo) (*entity.Todo, error)
	UpdateTodo(ctx context.Context, todo *entity.Todo) error
	DeleteTodo(ctx context.Context, id string) error
	UpdateTodoCompletion(ctx context.Context, id string, isCompleted bool) error
	// Sync reconciles the local store with the remote store using the
	// watermark. Without a local store it is a successful no-op.
	Sync(ctx context.Context, userID string, watermark int64) error
}
