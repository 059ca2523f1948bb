package messaging

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	TopicPurchaseCreated = "purchase.created"
	TopicPurchaseFailed  = "purchase.failed"
)

var topics = map[string]string{
	"PurchaseCreated": TopicPurchaseCreated,
	"PurchaseFailed":  TopicPurchaseFailed,
}

func topicFor(eventName string) (string, error) {
	topic, ok := topics[eventName]
	if !ok {
		return "", fmt.Errorf("no topic for event %q", eventName)
	}
	return topic, nil
}

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

type Header struct {
	PublishedAt time.Time `json:"published_at"`
}

type PurchaseCreated struct {
	Header      Header          `json:"header"`
	PurchaseID  string          `json:"purchase_id"`
	UserID      string          `json:"user_id"`
	EventID     string          `json:"event_id"`
	TicketCount int             `json:"ticket_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
}

type PurchaseFailed struct {
	Header      Header          `json:"header"`
	PurchaseID  string          `json:"purchase_id"`
	UserID      string          `json:"user_id"`
	EventID     string          `json:"event_id"`
	TicketCount int             `json:"ticket_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
}

func newPurchaseCreated(p *domain.Purchase, now time.Time) *PurchaseCreated {
	return &PurchaseCreated{
		Header:      Header{PublishedAt: now},
		PurchaseID:  p.ID,
		UserID:      p.UserID,
		EventID:     p.EventID,
		TicketCount: p.TicketCount,
		TotalAmount: p.TotalAmount,
		Currency:    p.Currency,
	}
}

func newPurchaseFailed(p *domain.Purchase, now time.Time) *PurchaseFailed {
	return &PurchaseFailed{
		Header:      Header{PublishedAt: now},
		PurchaseID:  p.ID,
		UserID:      p.UserID,
		EventID:     p.EventID,
		TicketCount: p.TicketCount,
		TotalAmount: p.TotalAmount,
		Currency:    p.Currency,
	}
}
