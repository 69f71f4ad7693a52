package dto

type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartAt     *int64 `json:"start_at" validate:"required"`
	Deadline    *int64 `json:"deadline" validate:"required"`
}

type UpdateTodoRequest struct {
	Id          string
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
	StartAt     *int64 `json:"start_at"`
	Deadline    *int64 `json:"deadline"`
}

type UpdateTodoCompletionRequest struct {
	Id          string
	IsCompleted bool `json:"is_completed"`
}

type TodoResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
	StartAt     *int64 `json:"start_at"`
	Deadline    *int64 `json:"deadline"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}
