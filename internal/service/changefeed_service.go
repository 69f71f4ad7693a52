package service

import (
	"context"

	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/websocket"
	"todonotediary-be/pkg/events"
	pktNats "todonotediary-be/pkg/nats"
)

// IChangeFeedService bridges the event bus to the websocket hub: every
// mutation event published on NATS is relayed to the owning user's devices.
type IChangeFeedService interface {
	Start() error
}

type changeFeedService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	log        logger.ILogger
}

func NewChangeFeedService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) IChangeFeedService {
	return &changeFeedService{
		subscriber: subscriber,
		hub:        hub,
		log:        log,
	}
}

func (s *changeFeedService) Start() error {
	return s.subscriber.Subscribe("events.>", "change-feed", s.handle)
}

func (s *changeFeedService) handle(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	userID, ok := payload["user_id"].(string)
	if !ok || userID == "" {
		s.log.Warn("ChangeFeed", "event without user_id dropped", map[string]interface{}{"event": event.EventType()})
		return nil
	}

	s.hub.Send(userID, payload)
	return nil
}
