package ports

import (
	"context"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListNearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.Event, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
