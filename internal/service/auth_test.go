package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	users    *mocks.MockUserRepo
	hasher   *mocks.MockPasswordHasher
	authn    *mocks.MockAuthenticator
	sessions *mocks.MockSessionStore
}

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	t.Helper()
	m := authMocks{
		users:    mocks.NewMockUserRepo(t),
		hasher:   mocks.NewMockPasswordHasher(t),
		authn:    mocks.NewMockAuthenticator(t),
		sessions: mocks.NewMockSessionStore(t),
	}
	return NewAuthService(m.users, m.hasher, m.authn, m.sessions, newTestLogger(t)), m
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, m := newAuthService(t)

	m.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	m.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.sessions.EXPECT().Create(mock.Anything, mock.Anything).Return("sid-1", nil)

	user, sid, err := svc.Signup(context.Background(), domain.SignupInput{
		Name:     "  Alice ",
		Email:    "Alice@Example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Zero(t, user.EngagementScore)
	assert.NotEmpty(t, user.ID)
}

func TestAuthService_Signup_ValidationErrors(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Signup(context.Background(), domain.SignupInput{
		Email:    "not-an-email",
		Password: "short",
	})

	require.ErrorIs(t, err, domain.ErrValidation)

	var verr domain.ValidationErrors
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []domain.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email is invalid"},
		{Field: "password", Message: "Password must be at least 8 characters"},
	}, []domain.FieldError(verr))
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	svc, m := newAuthService(t)

	m.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{ID: "u1"}, nil)

	_, _, err := svc.Signup(context.Background(), domain.SignupInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Signup_EmailTakenOnInsert(t *testing.T) {
	svc, m := newAuthService(t)

	m.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)
	m.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, _, err := svc.Signup(context.Background(), domain.SignupInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newAuthService(t)

	creds := domain.Credentials{Email: "alice@example.com", Password: "password123"}
	m.authn.EXPECT().Authenticate(mock.Anything, creds).Return("u1", nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice"}, nil)
	m.sessions.EXPECT().Create(mock.Anything, "u1").Return("sid-1", nil)

	user, sid, err := svc.Login(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "sid-1", sid)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, m := newAuthService(t)

	m.authn.EXPECT().Authenticate(mock.Anything, mock.Anything).Return("", domain.ErrInvalidCredentials)

	_, _, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	svc, m := newAuthService(t)

	m.sessions.EXPECT().Delete(mock.Anything, "sid-1").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "sid-1"))
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_CurrentUser_Anonymous(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.CurrentUser(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
