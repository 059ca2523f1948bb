package scheduler

import (
	"context"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type purchaseExpirer interface {
	ExpirePending(ctx context.Context) ([]*domain.Purchase, error)
}

// Scheduler периодически переводит просроченные pending покупки в failed.
type Scheduler struct {
	expirer  purchaseExpirer
	interval time.Duration
	log      logger.Logger
}

func New(expirer purchaseExpirer, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		expirer:  expirer,
		interval: interval,
		log:      log,
	}
}

// Start сразу делает первый проход (покупки могли просрочиться, пока сервис
// был остановлен) и блокируется до отмены ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("purchase expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("purchase expiry scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	// проход не должен наезжать на следующий тик
	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	started := time.Now()
	expired, err := s.expirer.ExpirePending(sweepCtx)
	if err != nil {
		s.log.Error("failed to expire pending purchases",
			logger.String("error", err.Error()),
			logger.Duration("elapsed", time.Since(started)),
		)
		return
	}
	if len(expired) == 0 {
		return
	}

	released := 0
	for _, p := range expired {
		released += p.TicketCount
		s.log.Debug("purchase expired",
			logger.String("purchase_id", p.ID),
			logger.String("user_id", p.UserID),
			logger.String("event_id", p.EventID),
			logger.Int("tickets", p.TicketCount),
		)
	}

	s.log.Info("pending purchases expired",
		logger.Int("purchases", len(expired)),
		logger.Int("tickets_released", released),
		logger.Duration("elapsed", time.Since(started)),
	)
}
