package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase_ExpandsLineItems(t *testing.T) {
	p, err := NewPurchase("u1", "e1", PurchaseInput{
		Items: []LineItem{
			{Type: TicketTypePriority, Price: decimal.NewFromInt(50), Count: 2},
			{Type: TicketTypeGeneral, Price: decimal.NewFromInt(20), Count: 1},
		},
		TotalAmount: decimal.NewFromInt(120),
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, 3, p.TicketCount)
	assert.Empty(t, p.Tickets)

	p.IssueTickets()
	require.Len(t, p.Tickets, 3)
	assert.Equal(t, TicketTypePriority, p.Tickets[0].Type)
	assert.Equal(t, TicketTypeGeneral, p.Tickets[2].Type)
	for _, tk := range p.Tickets {
		assert.Equal(t, p.ID, tk.PurchaseID)
		assert.Equal(t, "u1", tk.UserID)
		assert.Equal(t, "e1", tk.EventID)
	}
	assert.Equal(t, PurchaseStatusPending, p.Status)
	assert.Equal(t, DefaultCurrency, p.Currency)
	assert.Equal(t, testNow, p.TransactionDate)
}

func TestPurchase_IssueTicketsOnce(t *testing.T) {
	p, err := NewPurchase("u1", "e1", PurchaseInput{
		Items: []LineItem{{Type: TicketTypeGeneral, Count: 2}},
	}, testNow)
	require.NoError(t, err)

	p.IssueTickets()
	first := p.Tickets[0].ID
	p.IssueTickets()

	require.Len(t, p.Tickets, 2)
	assert.Equal(t, first, p.Tickets[0].ID)
	assert.Equal(t, testNow, p.Tickets[0].CreatedAt)
}

func TestNewPurchase_HugeCountAllocatesNothing(t *testing.T) {
	p, err := NewPurchase("u1", "e1", PurchaseInput{
		Items: []LineItem{{Type: TicketTypeGeneral, Count: 2_000_000_000}},
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, 2_000_000_000, p.TicketCount)
	assert.Nil(t, p.Tickets)
}

func TestNewPurchase_CountBounds(t *testing.T) {
	_, err := NewPurchase("u1", "e1", PurchaseInput{
		Items: []LineItem{{Type: TicketTypeGeneral, Count: MaxLineItemCount + 1}},
	}, testNow)
	assert.Equal(t, []string{"tickets[0].count"}, fields(t, err))

	_, err = NewPurchase("u1", "e1", PurchaseInput{
		Items: []LineItem{
			{Type: TicketTypeGeneral, Count: MaxLineItemCount},
			{Type: TicketTypePriority, Count: 1},
		},
	}, testNow)
	assert.Equal(t, []string{"tickets"}, fields(t, err))
}

func TestNewPurchase_AmountPrecision(t *testing.T) {
	_, err := NewPurchase("u1", "e1", PurchaseInput{
		Items:       []LineItem{{Type: TicketTypeGeneral, Price: decimal.RequireFromString("9.999"), Count: 1}},
		TotalAmount: decimal.RequireFromString("0.001"),
	}, testNow)

	assert.ElementsMatch(t, []string{"tickets[0].ticket.price", "totalAmount"}, fields(t, err))

	p, err := NewPurchase("u1", "e1", PurchaseInput{
		Items:       []LineItem{{Type: TicketTypeGeneral, Price: decimal.RequireFromString("9.99"), Count: 1}},
		TotalAmount: decimal.RequireFromString("9.990"),
	}, testNow)
	require.NoError(t, err)
	assert.True(t, p.TotalAmount.Equal(decimal.RequireFromString("9.99")))
}

func TestNewPurchase_KeepsExplicitFields(t *testing.T) {
	txDate := time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC)
	p, err := NewPurchase("u1", "e1", PurchaseInput{
		Items:            []LineItem{{Type: TicketTypeGeneral, Count: 1}},
		Currency:         " eur ",
		Status:           PurchaseStatusCompleted,
		TransactionDate:  txDate,
		PaymentReference: "pay-1",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "EUR", p.Currency)
	assert.Equal(t, PurchaseStatusCompleted, p.Status)
	assert.Equal(t, txDate, p.TransactionDate)
	assert.Equal(t, "pay-1", p.PaymentReference)
}

func TestNewPurchase_Validation(t *testing.T) {
	_, err := NewPurchase("u1", "e1", PurchaseInput{
		Items: []LineItem{
			{Type: "vip", Price: decimal.NewFromInt(-5), Count: 0},
		},
		TotalAmount: decimal.NewFromInt(-1),
		Currency:    "DOLLARS",
		Status:      "refunded",
	}, testNow)

	assert.ErrorIs(t, err, ErrValidation)
	assert.ElementsMatch(t, []string{
		"tickets[0].count",
		"tickets[0].ticket.type",
		"tickets[0].ticket.price",
		"totalAmount",
		"currency",
		"status",
	}, fields(t, err))
}

func TestNewPurchase_NoTickets(t *testing.T) {
	_, err := NewPurchase("u1", "e1", PurchaseInput{}, testNow)

	assert.Equal(t, []string{"tickets"}, fields(t, err))
}

func TestNewPurchase_Anonymous(t *testing.T) {
	_, err := NewPurchase("", "e1", PurchaseInput{Items: []LineItem{{Type: TicketTypeGeneral, Count: 1}}}, testNow)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
