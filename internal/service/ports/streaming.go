package ports

import (
	"context"
	"encoding/json"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
)

type OAuthProvider interface {
	AuthCodeURL(state string) string
	// Exchange меняет code на токены. AccountID в результате не заполнен.
	Exchange(ctx context.Context, code string) (*domain.StreamingAccount, error)
	// Refresh обновляет токен, если он истёк. Второе значение - был ли токен обновлён.
	Refresh(ctx context.Context, acc domain.StreamingAccount) (domain.StreamingAccount, bool, error)
}

type StreamingAPI interface {
	AccountID(ctx context.Context, accessToken string) (string, error)
	Fetch(ctx context.Context, resource, accessToken string, all bool) (json.RawMessage, error)
}
