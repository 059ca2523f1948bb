package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02 Jan 2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPurchaseCreated(ctx context.Context, user *domain.User, event *domain.Event, p ports.PurchaseSummary) {
	var b strings.Builder
	b.WriteString("*Tickets reserved!*\n\n")
	writeEvent(&b, event)
	fmt.Fprintf(&b, "Tickets: %d\nTotal: %s %s\nOrder: `%s`", p.TicketCount, p.TotalAmount, p.Currency, p.PurchaseID)

	n.send(ctx, user.TelegramChatID, b.String())
}

func (n *TelegramNotifier) NotifyPurchaseFailed(ctx context.Context, user *domain.User, event *domain.Event, p ports.PurchaseSummary) {
	var b strings.Builder
	b.WriteString("*Purchase expired*\n\n")
	writeEvent(&b, event)
	fmt.Fprintf(&b, "Your %d ticket(s) were released because the payment was not completed in time.", p.TicketCount)

	n.send(ctx, user.TelegramChatID, b.String())
}

// writeEvent экранирует пользовательские поля: название может содержать * или _.
func writeEvent(b *strings.Builder, event *domain.Event) {
	fmt.Fprintf(b, "Event: %s\n", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Title))
	if event.Venue != "" {
		fmt.Fprintf(b, "Venue: %s\n", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Venue))
	}
	fmt.Fprintf(b, "Date (UTC): %s\n", event.Date.UTC().Format(dateLayout))
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
