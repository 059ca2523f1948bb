package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
)

func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusCompleted, PurchaseStatusFailed:
		return true
	}
	return false
}

const DefaultCurrency = "USD"

// LineItem - Count билетов одного типа по одной цене.
type LineItem struct {
	Type       TicketType
	Price      decimal.Decimal
	IsRedeemed bool
	Count      int
}

type PurchaseInput struct {
	Items            []LineItem
	TotalAmount      decimal.Decimal
	Currency         string
	Status           PurchaseStatus
	TransactionDate  time.Time
	PaymentReference string
}

type Purchase struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	EventID          string          `json:"event_id"`
	Tickets          []Ticket        `json:"tickets"`
	TicketCount      int             `json:"ticket_count"`
	Items            []LineItem      `json:"-"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Currency         string          `json:"currency"`
	Status           PurchaseStatus  `json:"status"`
	TransactionDate  time.Time       `json:"transaction_date"`
	PaymentReference string          `json:"payment_reference"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MaxLineItemCount - верхняя граница count одной позиции.
const MaxLineItemCount = math.MaxInt32

// NewPurchase валидирует вход. Билеты здесь не создаются: наличие мест проверяет
// репозиторий в транзакции и только после этого вызывает IssueTickets.
func NewPurchase(userID, eventID string, input PurchaseInput, now time.Time) (*Purchase, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	var (
		verr  ValidationErrors
		total int64
	)

	if len(input.Items) == 0 {
		verr.add("tickets", "at least one ticket is required")
	}
	for i, item := range input.Items {
		field := fmt.Sprintf("tickets[%d]", i)
		switch {
		case item.Count < 1:
			verr.add(field+".count", "count must be at least 1")
		case item.Count > MaxLineItemCount:
			verr.add(field+".count", fmt.Sprintf("count must not exceed %d", MaxLineItemCount))
		default:
			total += int64(item.Count)
		}
		if !item.Type.Valid() {
			verr.add(field+".ticket.type", "type must be priority or general")
		}
		if item.Price.IsNegative() {
			verr.add(field+".ticket.price", "price must not be negative")
		} else if !fitsCents(item.Price) {
			verr.add(field+".ticket.price", "price must have at most 2 decimal places")
		}
	}
	if total > MaxLineItemCount {
		verr.add("tickets", fmt.Sprintf("total count must not exceed %d", MaxLineItemCount))
	}
	if input.TotalAmount.IsNegative() {
		verr.add("totalAmount", "totalAmount must not be negative")
	} else if !fitsCents(input.TotalAmount) {
		verr.add("totalAmount", "totalAmount must have at most 2 decimal places")
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		verr.add("currency", "currency must be a 3-letter code")
	}

	status := input.Status
	if status == "" {
		status = PurchaseStatusPending
	}
	if !status.Valid() {
		verr.add("status", "status must be pending, completed or failed")
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	txDate := input.TransactionDate
	if txDate.IsZero() {
		txDate = now
	}

	return &Purchase{
		ID:               uuid.New().String(),
		UserID:           userID,
		EventID:          eventID,
		TicketCount:      int(total),
		Items:            append([]LineItem(nil), input.Items...),
		TotalAmount:      input.TotalAmount,
		Currency:         currency,
		Status:           status,
		TransactionDate:  txDate.UTC(),
		PaymentReference: input.PaymentReference,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// IssueTickets разворачивает позиции в отдельные билеты. Повторный вызов ничего не меняет.
func (p *Purchase) IssueTickets() {
	if len(p.Tickets) > 0 {
		return
	}

	p.Tickets = make([]Ticket, 0, p.TicketCount)
	for _, item := range p.Items {
		for range item.Count {
			p.Tickets = append(p.Tickets, Ticket{
				ID:         uuid.New().String(),
				UserID:     p.UserID,
				EventID:    p.EventID,
				PurchaseID: p.ID,
				Type:       item.Type,
				Price:      item.Price,
				IsRedeemed: item.IsRedeemed,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
}

// fitsCents - NUMERIC(12,2) округлил бы лишние знаки молча.
func fitsCents(d decimal.Decimal) bool {
	return d.Exponent() >= -2 || d.Equal(d.Round(2))
}
