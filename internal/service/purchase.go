package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/metrics"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PurchaseService struct {
	purchaseRepo ports.PurchaseRepo
	eventRepo    ports.EventRepo
	publisher    ports.PurchasePublisher
	metrics      ports.PurchaseMetrics
	pendingTTL   time.Duration
	logger       logger.Logger
	now          func() time.Time
}

func NewPurchaseService(
	purchaseRepo ports.PurchaseRepo,
	eventRepo ports.EventRepo,
	publisher ports.PurchasePublisher,
	metrics ports.PurchaseMetrics,
	pendingTTL time.Duration,
	logger logger.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		eventRepo:    eventRepo,
		publisher:    publisher,
		metrics:      metrics,
		pendingTTL:   pendingTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// Purchase проверяет по порядку: пользователь, событие, состав заказа, наличие мест.
func (s *PurchaseService) Purchase(ctx context.Context, userID, eventID string, input domain.PurchaseInput) (*domain.Purchase, error) {
	if userID == "" {
		s.metrics.PurchaseProcessed(outcomeOf(domain.ErrNotAuthenticated), 0)
		return nil, domain.ErrNotAuthenticated
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		s.metrics.PurchaseProcessed(outcomeOf(err), 0)
		return nil, fmt.Errorf("get event: %w", err)
	}

	purchase, err := domain.NewPurchase(userID, eventID, input, s.now().UTC())
	if err != nil {
		s.metrics.PurchaseProcessed(outcomeOf(err), 0)
		return nil, err
	}

	// списание мест, билеты и покупка - одна транзакция
	if err = s.purchaseRepo.Create(ctx, purchase); err != nil {
		s.metrics.PurchaseProcessed(outcomeOf(err), purchase.TicketCount)
		return nil, fmt.Errorf("create purchase: %w", err)
	}
	s.metrics.PurchaseProcessed(metrics.OutcomeSuccess, purchase.TicketCount)

	s.logger.Info("purchase created",
		logger.String("purchase_id", purchase.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("tickets", purchase.TicketCount),
	)

	if err = s.publisher.PublishPurchaseCreated(context.WithoutCancel(ctx), purchase); err != nil {
		s.logger.Error("failed to publish purchase created",
			logger.String("purchase_id", purchase.ID),
			logger.String("error", err.Error()),
		)
	}

	return purchase, nil
}

// GetByID отдаёт покупку только её владельцу.
func (s *PurchaseService) GetByID(ctx context.Context, userID, id string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if purchase.UserID != userID {
		return nil, domain.ErrPurchaseNotFound
	}
	return purchase, nil
}

func (s *PurchaseService) Complete(ctx context.Context, userID, id, paymentReference string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.Complete(ctx, id, userID, paymentReference)
	if err != nil {
		return nil, fmt.Errorf("complete purchase: %w", err)
	}

	s.logger.Info("purchase completed",
		logger.String("purchase_id", id),
		logger.String("user_id", userID),
	)

	return purchase, nil
}

// ExpirePending проваливает pending покупки старше pendingTTL и возвращает их места.
func (s *PurchaseService) ExpirePending(ctx context.Context) ([]*domain.Purchase, error) {
	if s.pendingTTL <= 0 {
		return nil, nil
	}

	failed, err := s.purchaseRepo.FailExpired(ctx, s.now().UTC().Add(-s.pendingTTL))
	if err != nil {
		return nil, fmt.Errorf("fail expired: %w", err)
	}
	if len(failed) == 0 {
		return nil, nil
	}

	s.metrics.PurchasesExpired(len(failed))
	s.logger.Info("expired purchases failed", logger.Int("count", len(failed)))

	for _, p := range failed {
		if err = s.publisher.PublishPurchaseFailed(ctx, p); err != nil {
			s.logger.Error("failed to publish purchase failed",
				logger.String("purchase_id", p.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return failed, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientInventory):
		return metrics.OutcomeSoldOut
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotAuthenticated):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrUserNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
