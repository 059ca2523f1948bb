package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_SweepsImmediatelyOnStart(t *testing.T) {
	expirer := mocks.NewMockPurchaseExpirer(t)
	s := New(expirer, time.Hour, newTestLogger(t))

	expired := []*domain.Purchase{
		{ID: "p1", EventID: "e1", UserID: "u1", TicketCount: 2},
	}
	expirer.EXPECT().ExpirePending(mock.Anything).Return(expired, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	expirer.AssertNumberOfCalls(t, "ExpirePending", 1)
}

func TestScheduler_SweepHasDeadline(t *testing.T) {
	expirer := mocks.NewMockPurchaseExpirer(t)
	s := New(expirer, time.Hour, newTestLogger(t))

	expirer.EXPECT().ExpirePending(mock.Anything).
		Run(func(ctx context.Context) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		}).
		Return(nil, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_KeepsRunningAfterError(t *testing.T) {
	expirer := mocks.NewMockPurchaseExpirer(t)
	s := New(expirer, 20*time.Millisecond, newTestLogger(t))

	expirer.EXPECT().ExpirePending(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 3)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockPurchaseExpirer(t)
	s := New(expirer, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	expirer.AssertNotCalled(t, "ExpirePending", mock.Anything)
}
