package dto

import (
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// цены и суммы уходят клиенту числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type ValidationErrorResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

type StreamingAccountResponse struct {
	Provider   string `json:"provider"`
	AccountID  string `json:"accountId"`
	ExpiresAt  string `json:"expiresAt,omitempty"`
	Scope      string `json:"scope,omitempty"`
	LastSynced string `json:"lastSynced,omitempty"`
}

type UserResponse struct {
	ID                string                     `json:"id"`
	Name              string                     `json:"name"`
	Email             string                     `json:"email"`
	StreamingAccounts []StreamingAccountResponse `json:"streamingAccounts"`
	EngagementScore   int                        `json:"engagementScore"`
	IsVerified        bool                       `json:"isVerified"`
	Location          *Location                  `json:"location,omitempty"`
	CreatedAt         string                     `json:"createdAt"`
}

type UserEnvelope struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type PricingResponse struct {
	PriorityPrice decimal.Decimal `json:"priorityPrice"`
	GeneralPrice  decimal.Decimal `json:"generalPrice"`
}

type EventResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Date           string          `json:"date"`
	Venue          string          `json:"venue"`
	Artist         string          `json:"artist"`
	Description    string          `json:"description"`
	TotalTickets   int             `json:"totalTickets"`
	GeneralTickets int             `json:"generalTickets"`
	SoldTickets    int             `json:"soldTickets"`
	Pricing        PricingResponse `json:"pricing"`
	SalesOpen      bool            `json:"salesOpen"`
	Location       *Location       `json:"location,omitempty"`
	CreatedAt      string          `json:"createdAt"`
}

type EventEnvelope struct {
	Message string        `json:"message"`
	Event   EventResponse `json:"event"`
}

type TicketResponse struct {
	ID           string          `json:"id"`
	EventID      string          `json:"eventId"`
	PurchaseID   string          `json:"purchaseId"`
	Type         string          `json:"type"`
	Price        decimal.Decimal `json:"price"`
	PurchaseDate string          `json:"purchaseDate"`
	IsRedeemed   bool            `json:"isRedeemed"`
}

// PurchaseTicketResponse - элемент списка билетов покупки, каждый билет отдельной строкой.
type PurchaseTicketResponse struct {
	Ticket TicketResponse `json:"ticket"`
	Count  int            `json:"count"`
}

type PurchaseResponse struct {
	ID               string                   `json:"id"`
	UserID           string                   `json:"userId"`
	EventID          string                   `json:"eventId,omitempty"`
	Tickets          []PurchaseTicketResponse `json:"tickets"`
	TicketCount      int                      `json:"ticketCount"`
	TotalAmount      decimal.Decimal          `json:"totalAmount"`
	Currency         string                   `json:"currency"`
	Status           string                   `json:"status"`
	TransactionDate  string                   `json:"transactionDate"`
	PaymentReference string                   `json:"paymentReference,omitempty"`
	CreatedAt        string                   `json:"createdAt"`
	UpdatedAt        string                   `json:"updatedAt"`
}

type PurchaseEnvelope struct {
	Message  string           `json:"message"`
	Purchase PurchaseResponse `json:"purchase"`
}

type DashboardResponse struct {
	Name              string                     `json:"name"`
	Email             string                     `json:"email"`
	StreamingAccounts []StreamingAccountResponse `json:"streamingAccounts"`
	EngagementScore   int                        `json:"engagementScore"`
	TicketsPurchased  []TicketResponse           `json:"ticketsPurchased"`
	RegisteredEvents  []EventResponse            `json:"registeredEvents"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toLocation(p *domain.GeoPoint) *Location {
	if p == nil {
		return nil
	}
	return &Location{Type: "Point", Coordinates: []float64{p.Longitude, p.Latitude}}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		StreamingAccounts: toStreamingAccounts(u.StreamingAccounts),
		EngagementScore:   u.EngagementScore,
		IsVerified:        u.IsVerified,
		Location:          toLocation(u.Location),
		CreatedAt:         formatTime(u.CreatedAt),
	}
}

func toStreamingAccounts(accs []domain.StreamingAccount) []StreamingAccountResponse {
	resp := make([]StreamingAccountResponse, 0, len(accs))
	for _, a := range accs {
		resp = append(resp, StreamingAccountResponse{
			Provider:   string(a.Provider),
			AccountID:  a.AccountID,
			ExpiresAt:  formatTime(a.ExpiresAt),
			Scope:      a.Scope,
			LastSynced: formatTime(a.LastSynced),
		})
	}
	return resp
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Date:           formatTime(e.Date),
		Venue:          e.Venue,
		Artist:         e.Artist,
		Description:    e.Description,
		TotalTickets:   e.TotalTickets,
		GeneralTickets: e.GeneralTickets,
		SoldTickets:    e.SoldTickets,
		Pricing: PricingResponse{
			PriorityPrice: e.Pricing.PriorityPrice,
			GeneralPrice:  e.Pricing.GeneralPrice,
		},
		SalesOpen: e.SalesOpen,
		Location:  toLocation(e.Location),
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToTicketResponse(t domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		EventID:      t.EventID,
		PurchaseID:   t.PurchaseID,
		Type:         string(t.Type),
		Price:        t.Price,
		PurchaseDate: formatTime(t.CreatedAt),
		IsRedeemed:   t.IsRedeemed,
	}
}

func toTicketResponses(tickets []domain.Ticket) []TicketResponse {
	resp := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, ToTicketResponse(t))
	}
	return resp
}

func toPurchaseTickets(tickets []domain.Ticket) []PurchaseTicketResponse {
	resp := make([]PurchaseTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, PurchaseTicketResponse{Ticket: ToTicketResponse(t), Count: 1})
	}
	return resp
}

func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		EventID:          p.EventID,
		Tickets:          toPurchaseTickets(p.Tickets),
		TicketCount:      p.TicketCount,
		TotalAmount:      p.TotalAmount,
		Currency:         p.Currency,
		Status:           string(p.Status),
		TransactionDate:  formatTime(p.TransactionDate),
		PaymentReference: p.PaymentReference,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Name:              d.User.Name,
		Email:             d.User.Email,
		StreamingAccounts: toStreamingAccounts(d.User.StreamingAccounts),
		EngagementScore:   d.User.EngagementScore,
		TicketsPurchased:  toTicketResponses(d.Tickets),
		RegisteredEvents:  ToEventResponses(d.Events),
	}
}
