package service

import (
	"context"
	"fmt"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
)

type DashboardService struct {
	users   ports.UserRepo
	tickets ports.TicketRepo
	events  ports.EventRepo
}

func NewDashboardService(users ports.UserRepo, tickets ports.TicketRepo, events ports.EventRepo) *DashboardService {
	return &DashboardService{
		users:   users,
		tickets: tickets,
		events:  events,
	}
}

// Get собирает профиль, билеты и события, на которые куплены билеты.
func (s *DashboardService) Get(ctx context.Context, userID string) (*domain.Dashboard, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	tickets, err := s.tickets.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	seen := make(map[string]struct{}, len(tickets))
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		// у билетов удалённого события event_id пуст
		if t.EventID == "" {
			continue
		}
		if _, ok := seen[t.EventID]; ok {
			continue
		}
		seen[t.EventID] = struct{}{}
		ids = append(ids, t.EventID)
	}

	events := []*domain.Event{}
	if len(ids) > 0 {
		events, err = s.events.ListByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
	}

	return &domain.Dashboard{User: user, Tickets: tickets, Events: events}, nil
}
