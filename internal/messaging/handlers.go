package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type userStore interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	AddEngagement(ctx context.Context, userID string, delta int) error
}

type eventFinder interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

type Handler struct {
	users    userStore
	events   eventFinder
	notifier ports.PurchaseNotifier
	logger   logger.Logger
}

func NewHandler(users userStore, events eventFinder, notifier ports.PurchaseNotifier, logger logger.Logger) *Handler {
	return &Handler{
		users:    users,
		events:   events,
		notifier: notifier,
		logger:   logger,
	}
}

// AddEngagement начисляет покупателю очки по числу купленных билетов.
func (h *Handler) AddEngagement(ctx context.Context, e *PurchaseCreated) error {
	return h.changeEngagement(ctx, e.UserID, e.TicketCount)
}

// RevokeEngagement списывает очки за покупку, которая не состоялась.
func (h *Handler) RevokeEngagement(ctx context.Context, e *PurchaseFailed) error {
	return h.changeEngagement(ctx, e.UserID, -e.TicketCount)
}

func (h *Handler) NotifyCreated(ctx context.Context, e *PurchaseCreated) error {
	user, event, err := h.load(ctx, e.UserID, e.EventID)
	if err != nil || user == nil {
		return err
	}

	h.notifier.NotifyPurchaseCreated(ctx, user, event, ports.PurchaseSummary{
		PurchaseID:  e.PurchaseID,
		TicketCount: e.TicketCount,
		TotalAmount: e.TotalAmount.StringFixed(2),
		Currency:    e.Currency,
	})
	return nil
}

func (h *Handler) NotifyFailed(ctx context.Context, e *PurchaseFailed) error {
	user, event, err := h.load(ctx, e.UserID, e.EventID)
	if err != nil || user == nil {
		return err
	}

	h.notifier.NotifyPurchaseFailed(ctx, user, event, ports.PurchaseSummary{
		PurchaseID:  e.PurchaseID,
		TicketCount: e.TicketCount,
		TotalAmount: e.TotalAmount.StringFixed(2),
		Currency:    e.Currency,
	})
	return nil
}

func (h *Handler) changeEngagement(ctx context.Context, userID string, delta int) error {
	err := h.users.AddEngagement(ctx, userID, delta)
	if errors.Is(err, domain.ErrUserNotFound) {
		h.logger.Warn("engagement skipped, user not found", logger.String("user_id", userID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("add engagement: %w", err)
	}
	return nil
}

// load возвращает nil, nil, nil, если пользователя или события уже нет:
// повторная доставка такого сообщения ничего не изменит.
func (h *Handler) load(ctx context.Context, userID, eventID string) (*domain.User, *domain.Event, error) {
	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.logger.Warn("notification skipped, user not found", logger.String("user_id", userID))
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	if eventID == "" {
		h.logger.Warn("notification skipped, event was deleted", logger.String("user_id", userID))
		return nil, nil, nil
	}

	event, err := h.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			h.logger.Warn("notification skipped, event not found", logger.String("event_id", eventID))
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get event: %w", err)
	}

	return user, event, nil
}
