package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AuthService struct {
	users         ports.UserRepo
	hasher        ports.PasswordHasher
	authenticator ports.Authenticator
	sessions      ports.SessionStore
	logger        logger.Logger
	now           func() time.Time
}

func NewAuthService(
	users ports.UserRepo,
	hasher ports.PasswordHasher,
	authenticator ports.Authenticator,
	sessions ports.SessionStore,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:         users,
		hasher:        hasher,
		authenticator: authenticator,
		sessions:      sessions,
		logger:        logger,
		now:           time.Now,
	}
}

// Signup регистрирует пользователя и сразу открывает для него сессию.
func (s *AuthService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	email := domain.NormalizeEmail(input.Email)

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, "", domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		PasswordHash:   hash,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// уникальный индекс ловит гонку двух регистраций
	if err = s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("user signed up", logger.String("user_id", user.ID))

	return user, sessionID, nil
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.User, string, error) {
	userID, err := s.authenticator.Authenticate(ctx, creds)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return user, sessionID, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.users.GetByID(ctx, userID)
}
