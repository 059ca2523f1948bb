package ports

import (
	"context"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
)

type PurchaseRepo interface {
	// Create атомарно списывает места у события и сохраняет билеты и покупку.
	Create(ctx context.Context, p *domain.Purchase) error
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	Complete(ctx context.Context, id, userID, paymentReference string) (*domain.Purchase, error)
	// FailExpired переводит pending покупки старше olderThan в failed и возвращает места.
	FailExpired(ctx context.Context, olderThan time.Time) ([]*domain.Purchase, error)
}

type TicketRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error)
}

type PurchasePublisher interface {
	PublishPurchaseCreated(ctx context.Context, p *domain.Purchase) error
	PublishPurchaseFailed(ctx context.Context, p *domain.Purchase) error
}

type PurchaseMetrics interface {
	PurchaseProcessed(outcome string, tickets int)
	PurchasesExpired(n int)
}
