package ports

import (
	"context"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Authenticator проверяет учётные данные и возвращает id пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (string, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// StateStore хранит одноразовые OAuth state, привязанные к пользователю.
type StateStore interface {
	IssueState(ctx context.Context, userID string) (string, error)
	ConsumeState(ctx context.Context, state string) (string, error)
}
