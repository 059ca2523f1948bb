package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		h.badRequest(c, "invalid date format, expected RFC3339")
		return
	}

	location, err := geoPoint(req.Location)
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		Title:          req.Title,
		Date:           date,
		Venue:          req.Venue,
		Artist:         req.Artist,
		Description:    req.Description,
		TotalTickets:   req.TotalTickets,
		GeneralTickets: req.GeneralTickets,
		Pricing: domain.Pricing{
			PriorityPrice: req.Pricing.PriorityPrice,
			GeneralPrice:  req.Pricing.GeneralPrice,
		},
		SalesOpen: req.SalesOpen,
		Location:  location,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.EventEnvelope{Message: "Event created successfully", Event: dto.ToEventResponse(event)})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "invalid event id")
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// ListEvents отдаёт все события, либо события в радиусе при заданных lng, lat и radiusKm.
func (h *Handler) ListEvents(c *ginext.Context) {
	lng, hasLng := c.GetQuery("lng")
	lat, hasLat := c.GetQuery("lat")
	radius, hasRadius := c.GetQuery("radiusKm")

	if !hasLng && !hasLat && !hasRadius {
		events, err := h.eventService.List(c.Request.Context())
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToEventResponses(events))
		return
	}

	q, ok := nearbyQuery(lng, lat, radius)
	if !ok {
		h.badRequest(c, "lng, lat and radiusKm must be numbers")
		return
	}

	events, err := h.eventService.ListNearby(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "invalid event id")
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}

func nearbyQuery(lng, lat, radius string) (domain.NearbyQuery, bool) {
	x, err1 := strconv.ParseFloat(lng, 64)
	y, err2 := strconv.ParseFloat(lat, 64)
	r, err3 := strconv.ParseFloat(radius, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return domain.NearbyQuery{}, false
	}
	return domain.NearbyQuery{
		Center:   domain.GeoPoint{Longitude: x, Latitude: y},
		RadiusKm: r,
	}, true
}

var (
	errLocationType   = errors.New("location type must be Point")
	errLocationCoords = errors.New("location coordinates must be [lng, lat]")

	errInvalidTransactionDate = errors.New("invalid transactionDate format, expected RFC3339")
)

func geoPoint(l *dto.Location) (*domain.GeoPoint, error) {
	if l == nil {
		return nil, nil
	}
	if l.Type != "" && l.Type != "Point" {
		return nil, errLocationType
	}
	if len(l.Coordinates) != 2 {
		return nil, errLocationCoords
	}
	return &domain.GeoPoint{Longitude: l.Coordinates[0], Latitude: l.Coordinates[1]}, nil
}
