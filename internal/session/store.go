package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	sessionPrefix = "session:"
	statePrefix   = "oauth_state:"
)

// Store хранит сессии и OAuth state в Redis.
type Store struct {
	client   *redis.Client
	ttl      time.Duration
	stateTTL time.Duration
}

func NewStore(client *redis.Client, ttl, stateTTL time.Duration) *Store {
	return &Store{
		client:   client,
		ttl:      ttl,
		stateTTL: stateTTL,
	}
}

func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, sessionPrefix+id, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

// Lookup возвращает пользователя сессии и продлевает её.
func (s *Store) Lookup(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.GetEx(ctx, sessionPrefix+sessionID, s.ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotAuthenticated
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	return userID, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Store) IssueState(ctx context.Context, userID string) (string, error) {
	state := uuid.NewString()
	if err := s.client.Set(ctx, statePrefix+state, userID, s.stateTTL).Err(); err != nil {
		return "", fmt.Errorf("save oauth state: %w", err)
	}
	return state, nil
}

// ConsumeState одноразовый: повторный вызов с тем же state вернёт ErrInvalidOAuthState.
func (s *Store) ConsumeState(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", domain.ErrInvalidOAuthState
	}

	userID, err := s.client.GetDel(ctx, statePrefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidOAuthState
		}
		return "", fmt.Errorf("consume oauth state: %w", err)
	}
	return userID, nil
}
