package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Provider - OAuth клиент и API одного стримингового сервиса.
type Provider struct {
	OAuth ports.OAuthProvider
	API   ports.StreamingAPI
}

type Providers map[domain.StreamingProvider]Provider

func (p Providers) get(provider domain.StreamingProvider) (Provider, error) {
	pr, ok := p[provider]
	if !ok || pr.OAuth == nil || pr.API == nil {
		return Provider{}, fmt.Errorf("%w: %s", domain.ErrProviderNotSupported, provider)
	}
	return pr, nil
}

type LinkService struct {
	providers Providers
	states    ports.StateStore
	users     ports.UserRepo
	logger    logger.Logger
	now       func() time.Time
}

func NewLinkService(providers Providers, states ports.StateStore, users ports.UserRepo, logger logger.Logger) *LinkService {
	return &LinkService{
		providers: providers,
		states:    states,
		users:     users,
		logger:    logger,
		now:       time.Now,
	}
}

// BeginLink выдаёт URL авторизации провайдера с одноразовым state.
func (s *LinkService) BeginLink(ctx context.Context, userID string, provider domain.StreamingProvider) (string, error) {
	pr, err := s.providers.get(provider)
	if err != nil {
		return "", err
	}

	state, err := s.states.IssueState(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("issue state: %w", err)
	}

	return pr.OAuth.AuthCodeURL(state), nil
}

// LinkAccount обменивает код на токены и сохраняет аккаунт провайдера у пользователя.
func (s *LinkService) LinkAccount(ctx context.Context, userID string, provider domain.StreamingProvider, payload domain.CallbackPayload) (*domain.StreamingAccount, error) {
	pr, err := s.providers.get(provider)
	if err != nil {
		return nil, err
	}

	owner, err := s.states.ConsumeState(ctx, payload.State)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, domain.ErrInvalidOAuthState
	}

	account, err := pr.OAuth.Exchange(ctx, payload.Code)
	if err != nil {
		return nil, err
	}

	accountID, err := pr.API.AccountID(ctx, account.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch account id: %w", err)
	}

	account.Provider = provider
	account.AccountID = accountID
	account.LastSynced = s.now().UTC()

	if err = s.users.UpsertStreamingAccount(ctx, userID, *account); err != nil {
		return nil, fmt.Errorf("save streaming account: %w", err)
	}

	s.logger.Info("streaming account linked",
		logger.String("user_id", userID),
		logger.String("provider", string(provider)),
	)

	return account, nil
}

// CompleteLink привязывает аккаунт и возвращает обновлённого пользователя.
func (s *LinkService) CompleteLink(ctx context.Context, userID string, provider domain.StreamingProvider, payload domain.CallbackPayload) (*domain.User, error) {
	if _, err := s.LinkAccount(ctx, userID, provider, payload); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}
