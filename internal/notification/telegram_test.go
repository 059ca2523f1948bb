package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/notification/mocks"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func testEvent() *domain.Event {
	return &domain.Event{ID: "e1", Title: "Concert", Date: time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)}
}

func TestTelegramNotifier_NotifyPurchaseCreated(t *testing.T) {
	bot := mocks.NewMockSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
	chatID := int64(42)

	bot.EXPECT().Send(mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok && msg.ChatID == 42 &&
			strings.Contains(msg.Text, "Concert") &&
			strings.Contains(msg.Text, "Tickets: 3") &&
			strings.Contains(msg.Text, "150.00 USD")
	})).Return(tgbotapi.Message{}, nil)

	n.NotifyPurchaseCreated(context.Background(), &domain.User{ID: "u1", TelegramChatID: &chatID}, testEvent(),
		ports.PurchaseSummary{PurchaseID: "p1", TicketCount: 3, TotalAmount: "150.00", Currency: "USD"})
}

func TestTelegramNotifier_NotifyPurchaseFailed_SendError(t *testing.T) {
	bot := mocks.NewMockSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
	chatID := int64(42)

	bot.EXPECT().Send(mock.Anything).Return(tgbotapi.Message{}, errors.New("telegram unavailable"))

	assert.NotPanics(t, func() {
		n.NotifyPurchaseFailed(context.Background(), &domain.User{ID: "u1", TelegramChatID: &chatID}, testEvent(),
			ports.PurchaseSummary{PurchaseID: "p1", TicketCount: 1})
	})
}

func TestTelegramNotifier_SkipsWithoutChatID(t *testing.T) {
	bot := mocks.NewMockSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyPurchaseCreated(context.Background(), &domain.User{ID: "u1"}, testEvent(), ports.PurchaseSummary{})

	bot.AssertNotCalled(t, "Send", mock.Anything)
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	bot := mocks.NewMockSender(t)
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
	chatID := int64(42)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.NotifyPurchaseCreated(ctx, &domain.User{ID: "u1", TelegramChatID: &chatID}, testEvent(), ports.PurchaseSummary{})

	bot.AssertNotCalled(t, "Send", mock.Anything)
}

func TestNewTelegramNotifier_EmptyTokenDisablesBot(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)
	assert.NotPanics(t, func() {
		chatID := int64(1)
		n.NotifyPurchaseCreated(context.Background(), &domain.User{TelegramChatID: &chatID}, testEvent(), ports.PurchaseSummary{})
	})
}

func TestWriteEvent_EscapesMarkdown(t *testing.T) {
	var b strings.Builder

	writeEvent(&b, &domain.Event{Title: "Rock_n*Roll", Venue: "Hall [A]", Date: testEvent().Date})

	assert.Contains(t, b.String(), `Event: Rock\_n\*Roll`)
	assert.Contains(t, b.String(), `Venue: Hall \[A]`)
	assert.Contains(t, b.String(), "Date (UTC): 01 Jul 2026 20:00")
}
