package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo   ports.EventRepo
	logger logger.Logger
	now    func() time.Time
}

func NewEventService(repo ports.EventRepo, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	event, err := domain.NewEvent(input, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.Int("total_tickets", event.TotalTickets),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) ListNearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.Event, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.ListNearby(ctx, q)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))
	return nil
}
