package dto

import (
	"github.com/shopspring/decimal"
)

type SignupRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	TelegramChatID *int64 `json:"telegramChatId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Location - GeoJSON Point, coordinates в порядке [lng, lat].
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type PricingRequest struct {
	PriorityPrice decimal.Decimal `json:"priorityPrice"`
	GeneralPrice  decimal.Decimal `json:"generalPrice"`
}

type CreateEventRequest struct {
	Title          string         `json:"title"`
	Date           string         `json:"date" binding:"required"`
	Venue          string         `json:"venue"`
	Artist         string         `json:"artist"`
	Description    string         `json:"description"`
	TotalTickets   int            `json:"totalTickets"`
	GeneralTickets *int           `json:"generalTickets"`
	Pricing        PricingRequest `json:"pricing"`
	SalesOpen      bool           `json:"salesOpen"`
	Location       *Location      `json:"location"`
}

type TicketSpec struct {
	Type       string          `json:"type"`
	Price      decimal.Decimal `json:"price"`
	IsRedeemed bool            `json:"isRedeemed"`
}

type LineItemRequest struct {
	Ticket TicketSpec `json:"ticket"`
	Count  int        `json:"count"`
}

type PurchaseRequest struct {
	Tickets          []LineItemRequest `json:"tickets"`
	TotalAmount      decimal.Decimal   `json:"totalAmount"`
	Currency         string            `json:"currency"`
	Status           string            `json:"status"`
	TransactionDate  string            `json:"transactionDate"`
	PaymentReference string            `json:"paymentReference"`
}

type ConfirmPurchaseRequest struct {
	PaymentReference string `json:"paymentReference"`
}
