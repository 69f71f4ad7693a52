package service

import (
	"context"
	"sort"
	"time"

	"todonotediary-be/internal/constant"
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/pkg/events"
	pktNats "todonotediary-be/pkg/nats"
	"todonotediary-be/pkg/palette"

	gocache "github.com/patrickmn/go-cache"
)

type INoteService interface {
	List(ctx context.Context, userID, category string) []*dto.NoteResponse
	Search(ctx context.Context, userID, keyword string) []*dto.NoteResponse
	Categories(ctx context.Context, userID string) *dto.CategoriesResponse
	Show(ctx context.Context, userID, id string) (*dto.NoteResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type noteService struct {
	noteRepo       contract.NoteRepository
	categoryCache  *gocache.Cache
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewNoteService(noteRepo contract.NoteRepository, eventPublisher *pktNats.Publisher, log logger.ILogger) INoteService {
	return &noteService{
		noteRepo:       noteRepo,
		categoryCache:  gocache.New(5*time.Minute, 10*time.Minute),
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *noteService) List(ctx context.Context, userID, category string) []*dto.NoteResponse {
	var notes []*entity.Note
	if category == "" || category == constant.CategoryAll {
		notes = s.noteRepo.GetNotes(ctx, userID)
	} else {
		notes = s.noteRepo.GetNotesByCategory(ctx, userID, category)
	}
	return notesToResponses(notes)
}

func (s *noteService) Search(ctx context.Context, userID, keyword string) []*dto.NoteResponse {
	return notesToResponses(s.noteRepo.SearchNotes(ctx, userID, keyword))
}

// Categories serves from a short-lived cache: the distinct query hits every
// note of the user and the list changes rarely.
func (s *noteService) Categories(ctx context.Context, userID string) *dto.CategoriesResponse {
	if cached, found := s.categoryCache.Get(userID); found {
		return &dto.CategoriesResponse{Categories: cached.([]string)}
	}

	categories := s.noteRepo.GetCategories(ctx, userID)
	sort.Strings(categories)
	s.categoryCache.Set(userID, categories, gocache.DefaultExpiration)
	return &dto.CategoriesResponse{Categories: categories}
}

func (s *noteService) owned(ctx context.Context, userID, id string) (*entity.Note, error) {
	note, err := s.noteRepo.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil || note.UserId != userID {
		return nil, contract.ErrNotFound
	}
	return note, nil
}

func (s *noteService) Show(ctx context.Context, userID, id string) (*dto.NoteResponse, error) {
	note, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return noteToResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	category := req.Category
	if category == "" {
		category = constant.DefaultNoteCategory
	}

	note := &entity.Note{
		Title:           req.Title,
		Content:         req.Content,
		Category:        category,
		BackgroundColor: req.BackgroundColor,
		UserId:          userID,
	}
	saved, err := s.noteRepo.AddNote(ctx, note)
	if err != nil {
		return nil, err
	}

	s.categoryCache.Delete(userID)
	s.publish(ctx, constant.EventNoteCreated, userID, saved.Id)
	return noteToResponse(saved), nil
}

func (s *noteService) Update(ctx context.Context, userID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	existing, err := s.owned(ctx, userID, req.Id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Content = req.Content
	if req.Category != "" {
		existing.Category = req.Category
	}
	existing.BackgroundColor = req.BackgroundColor
	if err := s.noteRepo.UpdateNote(ctx, existing); err != nil {
		return nil, err
	}

	s.categoryCache.Delete(userID)
	s.publish(ctx, constant.EventNoteUpdated, userID, existing.Id)
	return noteToResponse(existing), nil
}

func (s *noteService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.noteRepo.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.categoryCache.Delete(userID)
	s.publish(ctx, constant.EventNoteDeleted, userID, id)
	return nil
}

func (s *noteService) publish(ctx context.Context, eventType, userID, recordID string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewRecordEvent(eventType, userID, recordID)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("NoteService", "event publish failed", map[string]interface{}{"event": eventType, "error": err.Error()})
	}
}

// noteToResponse backfills the background color for notes saved without one,
// derived deterministically from the note id so the color is stable.
func noteToResponse(n *entity.Note) *dto.NoteResponse {
	color := n.BackgroundColor
	if color == "" {
		color = palette.DefaultNoteColor(n.Id)
	}
	return &dto.NoteResponse{
		Id:              n.Id,
		Title:           n.Title,
		Content:         n.Content,
		Category:        n.Category,
		BackgroundColor: color,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

func notesToResponses(notes []*entity.Note) []*dto.NoteResponse {
	out := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = noteToResponse(n)
	}
	return out
}
