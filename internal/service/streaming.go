package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type StreamingService struct {
	providers Providers
	users     ports.UserRepo
	logger    logger.Logger
	now       func() time.Time
}

func NewStreamingService(providers Providers, users ports.UserRepo, logger logger.Logger) *StreamingService {
	return &StreamingService{
		providers: providers,
		users:     users,
		logger:    logger,
		now:       time.Now,
	}
}

// Fetch читает ресурс провайдера от имени пользователя, при необходимости обновляя токен.
func (s *StreamingService) Fetch(ctx context.Context, userID string, provider domain.StreamingProvider, resource string, all bool) (json.RawMessage, error) {
	pr, err := s.providers.get(provider)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	account, ok := user.Account(provider)
	if !ok {
		return nil, domain.ErrAccountNotLinked
	}

	fresh, refreshed, err := pr.OAuth.Refresh(ctx, *account)
	if err != nil {
		return nil, err
	}

	data, err := pr.API.Fetch(ctx, resource, fresh.AccessToken, all)
	if err != nil {
		return nil, err
	}

	if refreshed {
		fresh.LastSynced = s.now().UTC()
		if err = s.users.UpsertStreamingAccount(ctx, userID, fresh); err != nil {
			s.logger.Error("failed to save refreshed token",
				logger.String("user_id", userID),
				logger.String("provider", string(provider)),
				logger.String("error", err.Error()),
			)
		}
	}

	return data, nil
}
