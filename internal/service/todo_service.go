package service

import (
	"context"
	"strings"

	"todonotediary-be/internal/constant"
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/pkg/events"
	pktNats "todonotediary-be/pkg/nats"
)

type ITodoService interface {
	List(ctx context.Context, userID string) []*dto.TodoResponse
	ListUpcoming(ctx context.Context, userID string, selectedDate int64) []*dto.TodoResponse
	ListPast(ctx context.Context, userID string, selectedDate int64) []*dto.TodoResponse
	Show(ctx context.Context, userID, id string) (*dto.TodoResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateTodoRequest) (*dto.TodoResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateTodoRequest) (*dto.TodoResponse, error)
	Delete(ctx context.Context, userID, id string) error
	ToggleCompletion(ctx context.Context, userID, id string) (*dto.TodoResponse, error)
}

type todoService struct {
	todoRepo       contract.TodoRepository
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewTodoService(todoRepo contract.TodoRepository, eventPublisher *pktNats.Publisher, log logger.ILogger) ITodoService {
	return &todoService{
		todoRepo:       todoRepo,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *todoService) List(ctx context.Context, userID string) []*dto.TodoResponse {
	return todosToResponses(s.todoRepo.GetTodos(ctx, userID))
}

func (s *todoService) ListUpcoming(ctx context.Context, userID string, selectedDate int64) []*dto.TodoResponse {
	return todosToResponses(s.todoRepo.GetTodoUpcoming(ctx, userID, selectedDate))
}

func (s *todoService) ListPast(ctx context.Context, userID string, selectedDate int64) []*dto.TodoResponse {
	return todosToResponses(s.todoRepo.GetTodoPast(ctx, userID, selectedDate))
}

// owned fetches the record and hides it behind ErrNotFound when it does not
// exist or belongs to another user.
func (s *todoService) owned(ctx context.Context, userID, id string) (*entity.Todo, error) {
	todo, err := s.todoRepo.GetTodoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil || todo.UserId != userID {
		return nil, contract.ErrNotFound
	}
	return todo, nil
}

func (s *todoService) Show(ctx context.Context, userID, id string) (*dto.TodoResponse, error) {
	todo, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return todoToResponse(todo), nil
}

func (s *todoService) Create(ctx context.Context, userID string, req *dto.CreateTodoRequest) (*dto.TodoResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &serverutils.ValidationError{Message: "title must not be blank"}
	}

	todo := &entity.Todo{
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		Deadline:    req.Deadline,
		UserId:      userID,
	}
	saved, err := s.todoRepo.AddTodo(ctx, todo)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, constant.EventTodoCreated, userID, saved.Id)
	return todoToResponse(saved), nil
}

func (s *todoService) Update(ctx context.Context, userID string, req *dto.UpdateTodoRequest) (*dto.TodoResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &serverutils.ValidationError{Message: "title must not be blank"}
	}

	existing, err := s.owned(ctx, userID, req.Id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.IsCompleted = req.IsCompleted
	existing.StartAt = req.StartAt
	existing.Deadline = req.Deadline
	if err := s.todoRepo.UpdateTodo(ctx, existing); err != nil {
		return nil, err
	}

	s.publish(ctx, constant.EventTodoUpdated, userID, existing.Id)
	return todoToResponse(existing), nil
}

func (s *todoService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.todoRepo.DeleteTodo(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constant.EventTodoDeleted, userID, id)
	return nil
}

// ToggleCompletion reads the current completion state and flips it, rather
// than trusting a client-supplied value.
func (s *todoService) ToggleCompletion(ctx context.Context, userID, id string) (*dto.TodoResponse, error) {
	todo, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	flipped := !todo.IsCompleted
	if err := s.todoRepo.UpdateTodoCompletion(ctx, id, flipped); err != nil {
		return nil, err
	}

	todo.IsCompleted = flipped
	s.publish(ctx, constant.EventTodoUpdated, userID, id)
	return todoToResponse(todo), nil
}

// publish emits a mutation event. Event delivery is auxiliary, so a failure
// is logged and never fails the request.
func (s *todoService) publish(ctx context.Context, eventType, userID, recordID string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewRecordEvent(eventType, userID, recordID)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("TodoService", "event publish failed", map[string]interface{}{"event": eventType, "error": err.Error()})
	}
}

func todoToResponse(t *entity.Todo) *dto.TodoResponse {
	return &dto.TodoResponse{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		StartAt:     t.StartAt,
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func todosToResponses(todos []*entity.Todo) []*dto.TodoResponse {
	out := make([]*dto.TodoResponse, len(todos))
	for i, t := range todos {
		out[i] = todoToResponse(t)
	}
	return out
}
