package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeoPoint - точка в координатах WGS84.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (p GeoPoint) valid() bool {
	return p.Longitude >= -180 && p.Longitude <= 180 &&
		p.Latitude >= -90 && p.Latitude <= 90
}

type Pricing struct {
	PriorityPrice decimal.Decimal `json:"priority_price"`
	GeneralPrice  decimal.Decimal `json:"general_price"`
}

type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	Venue          string    `json:"venue"`
	Artist         string    `json:"artist"`
	Description    string    `json:"description"`
	TotalTickets   int       `json:"total_tickets"`
	GeneralTickets int       `json:"general_tickets"`
	SoldTickets    int       `json:"sold_tickets"`
	Pricing        Pricing   `json:"pricing"`
	SalesOpen      bool      `json:"sales_open"`
	Location       *GeoPoint `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateEventInput struct {
	Title          string
	Date           time.Time
	Venue          string
	Artist         string
	Description    string
	TotalTickets   int
	GeneralTickets *int
	Pricing        Pricing
	SalesOpen      bool
	Location       *GeoPoint
}

// NearbyQuery - поиск событий в радиусе RadiusKm от Center.
type NearbyQuery struct {
	Center   GeoPoint
	RadiusKm float64
}

// NewEvent валидирует вход и создаёт событие.
// GeneralTickets по умолчанию равен TotalTickets.
func NewEvent(input CreateEventInput, now time.Time) (*Event, error) {
	var verr ValidationErrors

	if input.Title == "" {
		verr.add("title", "title is required")
	}
	if input.Date.IsZero() {
		verr.add("date", "date is required")
	}
	if input.TotalTickets < 0 {
		verr.add("totalTickets", "totalTickets must not be negative")
	}

	general := input.TotalTickets
	if input.GeneralTickets != nil {
		general = *input.GeneralTickets
	}
	if general < 0 {
		verr.add("generalTickets", "generalTickets must not be negative")
	} else if general > input.TotalTickets {
		verr.add("generalTickets", "generalTickets must not exceed totalTickets")
	}

	switch pr := input.Pricing; {
	case pr.PriorityPrice.IsNegative() || pr.GeneralPrice.IsNegative():
		verr.add("pricing", "prices must not be negative")
	case !fitsCents(pr.PriorityPrice) || !fitsCents(pr.GeneralPrice):
		verr.add("pricing", "prices must have at most 2 decimal places")
	}
	if input.Location != nil && !input.Location.valid() {
		verr.add("location", "coordinates are out of range")
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return &Event{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Date:           input.Date.UTC(),
		Venue:          input.Venue,
		Artist:         input.Artist,
		Description:    input.Description,
		TotalTickets:   input.TotalTickets,
		GeneralTickets: general,
		Pricing:        input.Pricing,
		SalesOpen:      input.SalesOpen,
		Location:       input.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (q NearbyQuery) Validate() error {
	var verr ValidationErrors
	if !q.Center.valid() {
		verr.add("location", "coordinates are out of range")
	}
	if q.RadiusKm <= 0 {
		verr.add("radiusKm", "radiusKm must be positive")
	}
	return verr.orNil()
}
