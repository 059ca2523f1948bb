package ports

import (
	"context"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
)

type PurchaseNotifier interface {
	NotifyPurchaseCreated(ctx context.Context, user *domain.User, event *domain.Event, p PurchaseSummary)
	NotifyPurchaseFailed(ctx context.Context, user *domain.User, event *domain.Event, p PurchaseSummary)
}

// PurchaseSummary - то, что уходит пользователю в уведомлении.
type PurchaseSummary struct {
	PurchaseID  string
	TicketCount int
	TotalAmount string
	Currency    string
}
