package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/handler/dto"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/session"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListNearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type PurchaseSvc interface {
	Purchase(ctx context.Context, userID, eventID string, input domain.PurchaseInput) (*domain.Purchase, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Purchase, error)
	Complete(ctx context.Context, userID, id, paymentReference string) (*domain.Purchase, error)
}

type AuthSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

type LinkSvc interface {
	BeginLink(ctx context.Context, userID string, provider domain.StreamingProvider) (string, error)
	CompleteLink(ctx context.Context, userID string, provider domain.StreamingProvider, payload domain.CallbackPayload) (*domain.User, error)
}

type StreamingSvc interface {
	Fetch(ctx context.Context, userID string, provider domain.StreamingProvider, resource string, all bool) (json.RawMessage, error)
}

type DashboardSvc interface {
	Get(ctx context.Context, userID string) (*domain.Dashboard, error)
}

type Services struct {
	Events    EventSvc
	Purchases PurchaseSvc
	Auth      AuthSvc
	Links     LinkSvc
	Streaming StreamingSvc
	Dashboard DashboardSvc
}

// CookieConfig - параметры cookie сессии.
type CookieConfig struct {
	Name   string
	Path   string
	Domain string
	MaxAge time.Duration
	Secure bool
}

type Handler struct {
	eventService     EventSvc
	purchaseService  PurchaseSvc
	authService      AuthSvc
	linkService      LinkSvc
	streamingService StreamingSvc
	dashboardService DashboardSvc
	cookie           CookieConfig
}

func NewHandler(svc Services, cookie CookieConfig) *Handler {
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &Handler{
		eventService:     svc.Events,
		purchaseService:  svc.Purchases,
		authService:      svc.Auth,
		linkService:      svc.Links,
		streamingService: svc.Streaming,
		dashboardService: svc.Dashboard,
		cookie:           cookie,
	}
}

func (h *Handler) Root(c *ginext.Context) {
	p, ok := session.PrincipalFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome. Please log in."})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), p.UserID)
	if err != nil {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome. Please log in."})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello " + user.Name})
}

func principal(c *ginext.Context) domain.Principal {
	p, _ := session.PrincipalFrom(c.Request.Context())
	return p
}

func (h *Handler) setSession(c *ginext.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sessionID, int(h.cookie.MaxAge.Seconds()), h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func (h *Handler) clearSession(c *ginext.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrInsufficientInventory):
		return http.StatusBadRequest, "Not enough tickets available"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrProviderNotSupported),
		errors.Is(err, domain.ErrInvalidOAuthState),
		errors.Is(err, domain.ErrOAuthExchange):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "User not authenticated"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"

	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "Event not found"
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPurchaseNotFound),
		errors.Is(err, domain.ErrUnknownResource):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrPurchaseNotPending),
		errors.Is(err, domain.ErrAccountNotLinked):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, err.Error()

	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr domain.ValidationErrors
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: verr})
		return
	}

	status, msg := errorStatus(err)
	c.JSON(status, dto.ErrorResponse{Message: msg})
}

func (h *Handler) badRequest(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: msg})
}
