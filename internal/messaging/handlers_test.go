package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/messaging/mocks"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	portmocks "github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
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

type handlerMocks struct {
	users    *mocks.MockUserStore
	events   *mocks.MockEventFinder
	notifier *portmocks.MockPurchaseNotifier
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	m := handlerMocks{
		users:    mocks.NewMockUserStore(t),
		events:   mocks.NewMockEventFinder(t),
		notifier: portmocks.NewMockPurchaseNotifier(t),
	}
	return NewHandler(m.users, m.events, m.notifier, newTestLogger(t)), m
}

func testCreated() *PurchaseCreated {
	return &PurchaseCreated{
		PurchaseID:  "p1",
		UserID:      "u1",
		EventID:     "e1",
		TicketCount: 3,
		TotalAmount: decimal.RequireFromString("150"),
		Currency:    "USD",
	}
}

func TestHandler_AddEngagement(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.users.EXPECT().AddEngagement(ctx, "u1", 3).Return(nil)

	assert.NoError(t, h.AddEngagement(ctx, testCreated()))
}

func TestHandler_RevokeEngagement(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.users.EXPECT().AddEngagement(ctx, "u1", -2).Return(nil)

	assert.NoError(t, h.RevokeEngagement(ctx, &PurchaseFailed{UserID: "u1", TicketCount: 2}))
}

func TestHandler_AddEngagement_UserGone(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.users.EXPECT().AddEngagement(ctx, "u1", 3).Return(domain.ErrUserNotFound)

	assert.NoError(t, h.AddEngagement(ctx, testCreated()))
}

func TestHandler_AddEngagement_RepoError(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.users.EXPECT().AddEngagement(ctx, "u1", 3).Return(errors.New("db down"))

	assert.Error(t, h.AddEngagement(ctx, testCreated()))
}

func TestHandler_NotifyCreated(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()
	user := &domain.User{ID: "u1", Name: "Ann"}
	event := &domain.Event{ID: "e1", Title: "Concert"}

	m.users.EXPECT().GetByID(ctx, "u1").Return(user, nil)
	m.events.EXPECT().GetByID(ctx, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyPurchaseCreated(ctx, user, event, ports.PurchaseSummary{
		PurchaseID:  "p1",
		TicketCount: 3,
		TotalAmount: "150.00",
		Currency:    "USD",
	}).Return()

	assert.NoError(t, h.NotifyCreated(ctx, testCreated()))
}

func TestHandler_NotifyCreated_EventGone(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.users.EXPECT().GetByID(ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.events.EXPECT().GetByID(ctx, "e1").Return(nil, domain.ErrEventNotFound)

	assert.NoError(t, h.NotifyCreated(ctx, testCreated()))
	m.notifier.AssertNotCalled(t, "NotifyPurchaseCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_NotifyFailed_EventDeleted(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.users.EXPECT().GetByID(ctx, "u1").Return(&domain.User{ID: "u1"}, nil)

	assert.NoError(t, h.NotifyFailed(ctx, &PurchaseFailed{PurchaseID: "p1", UserID: "u1", TicketCount: 1}))
	m.events.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "NotifyPurchaseFailed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_NotifyFailed_UserLookupError(t *testing.T) {
	h, m := newTestHandler(t)
	ctx := context.Background()

	m.users.EXPECT().GetByID(ctx, "u1").Return(nil, errors.New("db down"))

	err := h.NotifyFailed(ctx, &PurchaseFailed{PurchaseID: "p1", UserID: "u1", EventID: "e1"})

	assert.Error(t, err)
	m.events.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTopicFor(t *testing.T) {
	topic, err := topicFor("PurchaseCreated")
	assert.NoError(t, err)
	assert.Equal(t, TopicPurchaseCreated, topic)

	_, err = topicFor("Unknown")
	assert.Error(t, err)
}
