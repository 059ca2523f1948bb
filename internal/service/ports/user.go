package ports

import (
	"context"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpsertStreamingAccount(ctx context.Context, userID string, acc domain.StreamingAccount) error
	AddEngagement(ctx context.Context, userID string, delta int) error
}
