package service

import (
	"context"

	"todonotediary-be/internal/constant"
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/pkg/events"
	pktNats "todonotediary-be/pkg/nats"
	"todonotediary-be/pkg/palette"
)

type IDiaryService interface {
	List(ctx context.Context, userID string) []*dto.DiaryResponse
	ListByDate(ctx context.Context, userID string, date int64) []*dto.DiaryResponse
	Search(ctx context.Context, userID, keyword string) []*dto.DiaryResponse
	Show(ctx context.Context, userID, id string) (*dto.DiaryResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateDiaryRequest) (*dto.DiaryResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateDiaryRequest) (*dto.DiaryResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type diaryService struct {
	diaryRepo      contract.DiaryRepository
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewDiaryService(diaryRepo contract.DiaryRepository, eventPublisher *pktNats.Publisher, log logger.ILogger) IDiaryService {
	return &diaryService{
		diaryRepo:      diaryRepo,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *diaryService) List(ctx context.Context, userID string) []*dto.DiaryResponse {
	return diariesToResponses(s.diaryRepo.GetDiaries(ctx, userID))
}

func (s *diaryService) ListByDate(ctx context.Context, userID string, date int64) []*dto.DiaryResponse {
	return diariesToResponses(s.diaryRepo.GetDiariesByDate(ctx, userID, date))
}

func (s *diaryService) Search(ctx context.Context, userID, keyword string) []*dto.DiaryResponse {
	return diariesToResponses(s.diaryRepo.SearchDiaries(ctx, userID, keyword))
}

func (s *diaryService) owned(ctx context.Context, userID, id string) (*entity.Diary, error) {
	diary, err := s.diaryRepo.GetDiaryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diary == nil || diary.UserId != userID {
		return nil, contract.ErrNotFound
	}
	return diary, nil
}

func (s *diaryService) Show(ctx context.Context, userID, id string) (*dto.DiaryResponse, error) {
	diary, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return diaryToResponse(diary), nil
}

func (s *diaryService) Create(ctx context.Context, userID string, req *dto.CreateDiaryRequest) (*dto.DiaryResponse, error) {
	diary := &entity.Diary{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Date:    req.Date,
		UserId:  userID,
	}
	saved, err := s.diaryRepo.AddDiary(ctx, diary)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, constant.EventDiaryCreated, userID, saved.Id)
	return diaryToResponse(saved), nil
}

func (s *diaryService) Update(ctx context.Context, userID string, req *dto.UpdateDiaryRequest) (*dto.DiaryResponse, error) {
	existing, err := s.owned(ctx, userID, req.Id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.Mood = req.Mood
	if req.Date != 0 {
		existing.Date = req.Date
	}
	if err := s.diaryRepo.UpdateDiary(ctx, existing); err != nil {
		return nil, err
	}

	s.publish(ctx, constant.EventDiaryUpdated, userID, existing.Id)
	return diaryToResponse(existing), nil
}

func (s *diaryService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.diaryRepo.DeleteDiary(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constant.EventDiaryDeleted, userID, id)
	return nil
}

func (s *diaryService) publish(ctx context.Context, eventType, userID, recordID string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewRecordEvent(eventType, userID, recordID)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("DiaryService", "event publish failed", map[string]interface{}{"event": eventType, "error": err.Error()})
	}
}

func diaryToResponse(d *entity.Diary) *dto.DiaryResponse {
	return &dto.DiaryResponse{
		Id:        d.Id,
		Title:     d.Title,
		Content:   d.Content,
		Mood:      d.Mood,
		MoodColor: palette.MoodColor(d.Mood),
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func diariesToResponses(diaries []*entity.Diary) []*dto.DiaryResponse {
	out := make([]*dto.DiaryResponse, len(diaries))
	for i, d := range diaries {
		out[i] = diaryToResponse(d)
	}
	return out
}
