package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type StreamingProvider string

const (
	ProviderSpotify    StreamingProvider = "Spotify"
	ProviderAppleMusic StreamingProvider = "AppleMusic"
	ProviderYouTube    StreamingProvider = "YouTube"
)

var providerSlugs = map[string]StreamingProvider{
	"spotify":       ProviderSpotify,
	"apple-music":   ProviderAppleMusic,
	"youtube-music": ProviderYouTube,
}

// ProviderFromSlug разбирает имя провайдера из URL (spotify, apple-music, youtube-music).
func ProviderFromSlug(slug string) (StreamingProvider, error) {
	p, ok := providerSlugs[strings.ToLower(slug)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrProviderNotSupported, slug)
	}
	return p, nil
}

func (p StreamingProvider) Slug() string {
	for slug, provider := range providerSlugs {
		if provider == p {
			return slug
		}
	}
	return strings.ToLower(string(p))
}

type StreamingAccount struct {
	Provider     StreamingProvider `json:"provider"`
	AccountID    string            `json:"account_id"`
	AccessToken  string            `json:"-"`
	RefreshToken string            `json:"-"`
	ExpiresAt    time.Time         `json:"expires_at"`
	Scope        string            `json:"scope"`
	LastSynced   time.Time         `json:"last_synced"`
}

type User struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	PasswordHash      string             `json:"-"`
	StreamingAccounts []StreamingAccount `json:"streaming_accounts"`
	EngagementScore   int                `json:"engagement_score"`
	IsVerified        bool               `json:"is_verified"`
	Location          *GeoPoint          `json:"location"`
	TelegramChatID    *int64             `json:"telegram_chat_id"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// Account возвращает привязанный аккаунт провайдера.
func (u *User) Account(p StreamingProvider) (*StreamingAccount, bool) {
	for i := range u.StreamingAccounts {
		if u.StreamingAccounts[i].Provider == p {
			return &u.StreamingAccounts[i], true
		}
	}
	return nil, false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type SignupInput struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Password       string `validate:"required,min=8"`
	TelegramChatID *int64
}

var signupMessages = map[string]string{
	"Name.required":     "name is required",
	"Email.required":    "email is required",
	"Email.email":       "email is invalid",
	"Password.required": "Password must be at least 8 characters",
	"Password.min":      "Password must be at least 8 characters",
}

// Validate собирает ошибки по всем полям сразу.
func (in SignupInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var verr ValidationErrors
	for _, fe := range fieldErrs {
		verr.add(strings.ToLower(fe.Field()), signupMessages[fe.Field()+"."+fe.Tag()])
	}
	return verr
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Credentials struct {
	Email    string
	Password string
}

// Principal - аутентифицированный пользователь текущего запроса.
type Principal struct {
	UserID    string
	SessionID string
}

// CallbackPayload приходит от провайдера на redirect URL.
type CallbackPayload struct {
	Code  string
	State string
}

type Dashboard struct {
	User    *User
	Tickets []Ticket
	Events  []*Event
}
