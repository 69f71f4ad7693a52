package service

import (
	"context"
	"time"

	"todonotediary-be/internal/constant"
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/pkg/events"
	pktNats "todonotediary-be/pkg/nats"
)

type ISyncService interface {
	// SyncAll reconciles todos, notes and diaries in that order. The first
	// failing domain aborts the pass; the watermark only advances when every
	// domain finished.
	SyncAll(ctx context.Context, userID string) (*dto.SyncResponse, error)
}

type syncService struct {
	todoRepo       contract.TodoRepository
	noteRepo       contract.NoteRepository
	diaryRepo      contract.DiaryRepository
	watermarks     contract.WatermarkStore
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
	now            func() int64
}

func NewSyncService(
	todoRepo contract.TodoRepository,
	noteRepo contract.NoteRepository,
	diaryRepo contract.DiaryRepository,
	watermarks contract.WatermarkStore,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ISyncService {
	return &syncService{
		todoRepo:       todoRepo,
		noteRepo:       noteRepo,
		diaryRepo:      diaryRepo,
		watermarks:     watermarks,
		eventPublisher: eventPublisher,
		log:            log,
		now:            func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *syncService) SyncAll(ctx context.Context, userID string) (*dto.SyncResponse, error) {
	watermark, err := s.watermarks.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The new watermark is taken before the pass starts, so records written
	// while the pass runs are picked up again next time.
	next := s.now()

	if err := s.todoRepo.Sync(ctx, userID, watermark); err != nil {
		s.log.Error("SyncService", "todo sync failed", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return nil, err
	}
	if err := s.noteRepo.Sync(ctx, userID, watermark); err != nil {
		s.log.Error("SyncService", "note sync failed", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return nil, err
	}
	if err := s.diaryRepo.Sync(ctx, userID, watermark); err != nil {
		s.log.Error("SyncService", "diary sync failed", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return nil, err
	}

	if err := s.watermarks.Save(ctx, userID, next); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewSyncCompletedEvent(constant.EventSyncDone, userID, next)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("SyncService", "event publish failed", map[string]interface{}{"event": constant.EventSyncDone, "error": err.Error()})
		}
	}

	s.log.Info("SyncService", "full sync pass finished", map[string]interface{}{"user_id": userID, "watermark": next})
	return &dto.SyncResponse{Watermark: next}, nil
}
