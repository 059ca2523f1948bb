package domain

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
)

var (
	ErrInsufficientInventory = errors.New("not enough tickets available")
	ErrPurchaseNotPending    = errors.New("purchase is not in pending status")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrProviderNotSupported = errors.New("streaming provider is not supported")
	ErrInvalidOAuthState    = errors.New("invalid oauth state")
	ErrOAuthExchange        = errors.New("oauth code exchange failed")
	ErrAccountNotLinked     = errors.New("streaming account is not linked")
	ErrUnknownResource      = errors.New("unknown streaming resource")
	ErrUpstream             = errors.New("streaming api error")
)

var (
	ErrValidation = errors.New("validation error")
)

// FieldError - ошибка валидации одного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors собирает ошибки по всем полям, errors.Is(err, ErrValidation) == true.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
