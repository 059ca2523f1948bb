package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
)

type userFinder interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// LocalAuthenticator проверяет email и пароль по сохранённому bcrypt хешу.
type LocalAuthenticator struct {
	users  userFinder
	hasher ports.PasswordHasher
}

func NewLocalAuthenticator(users userFinder, hasher ports.PasswordHasher) *LocalAuthenticator {
	return &LocalAuthenticator{users: users, hasher: hasher}
}

func (a *LocalAuthenticator) Authenticate(ctx context.Context, creds domain.Credentials) (string, error) {
	if creds.Email == "" || creds.Password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := a.users.GetByEmail(ctx, domain.NormalizeEmail(creds.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		return "", err
	}

	return user.ID, nil
}
