package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketType string

const (
	TicketTypePriority TicketType = "priority"
	TicketTypeGeneral  TicketType = "general"
)

func (t TicketType) Valid() bool {
	return t == TicketTypePriority || t == TicketTypeGeneral
}

type Ticket struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	EventID    string          `json:"event_id"`
	PurchaseID string          `json:"purchase_id"`
	Type       TicketType      `json:"type"`
	Price      decimal.Decimal `json:"price"`
	IsRedeemed bool            `json:"is_redeemed"`
	CreatedAt  time.Time       `json:"created_at"`
}
