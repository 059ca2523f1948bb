package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/auth/mocks"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLocalAuthenticator_Authenticate(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password1")
	require.NoError(t, err)

	users := mocks.NewMockUserFinder(t)
	users.EXPECT().GetByEmail(context.Background(), "ann@example.com").
		Return(&domain.User{ID: "u1", Email: "ann@example.com", PasswordHash: hash}, nil)

	a := NewLocalAuthenticator(users, hasher)

	id, err := a.Authenticate(context.Background(), domain.Credentials{Email: " Ann@Example.com ", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, "u1", id)
}

func TestLocalAuthenticator_WrongPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password1")
	require.NoError(t, err)

	users := mocks.NewMockUserFinder(t)
	users.EXPECT().GetByEmail(context.Background(), "ann@example.com").
		Return(&domain.User{ID: "u1", PasswordHash: hash}, nil)

	a := NewLocalAuthenticator(users, hasher)

	_, err = a.Authenticate(context.Background(), domain.Credentials{Email: "ann@example.com", Password: "nope"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLocalAuthenticator_UnknownEmail(t *testing.T) {
	users := mocks.NewMockUserFinder(t)
	users.EXPECT().GetByEmail(context.Background(), "ghost@example.com").
		Return(nil, domain.ErrUserNotFound)

	a := NewLocalAuthenticator(users, NewBcryptHasher(bcrypt.MinCost))

	_, err := a.Authenticate(context.Background(), domain.Credentials{Email: "ghost@example.com", Password: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLocalAuthenticator_RepoError(t *testing.T) {
	users := mocks.NewMockUserFinder(t)
	users.EXPECT().GetByEmail(context.Background(), "ann@example.com").
		Return(nil, errors.New("db down"))

	a := NewLocalAuthenticator(users, NewBcryptHasher(bcrypt.MinCost))

	_, err := a.Authenticate(context.Background(), domain.Credentials{Email: "ann@example.com", Password: "x"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLocalAuthenticator_EmptyCredentials(t *testing.T) {
	users := mocks.NewMockUserFinder(t)
	a := NewLocalAuthenticator(users, NewBcryptHasher(bcrypt.MinCost))

	_, err := a.Authenticate(context.Background(), domain.Credentials{Email: "ann@example.com"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	users.AssertNotCalled(t, "GetByEmail")
}
