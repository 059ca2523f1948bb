package handler

import (
	"net/http"
	"strconv"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

var providerNames = map[domain.StreamingProvider]string{
	domain.ProviderSpotify:    "Spotify",
	domain.ProviderAppleMusic: "Apple Music",
	domain.ProviderYouTube:    "YouTube Music",
}

// BeginLink перенаправляет пользователя на страницу согласия провайдера.
func (h *Handler) BeginLink(c *ginext.Context) {
	provider, err := domain.ProviderFromSlug(c.Param("provider"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	url, err := h.linkService.BeginLink(c.Request.Context(), principal(c).UserID, provider)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}

func (h *Handler) LinkCallback(c *ginext.Context) {
	provider, err := domain.ProviderFromSlug(c.Param("provider"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	user, err := h.linkService.CompleteLink(c.Request.Context(), principal(c).UserID, provider, domain.CallbackPayload{
		Code:  c.Query("code"),
		State: c.Query("state"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Message: providerNames[provider] + " account linked",
		User:    dto.ToUserResponse(user),
	})
}

func (h *Handler) StreamingResource(c *ginext.Context) {
	provider, err := domain.ProviderFromSlug(c.Param("provider"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	all, _ := strconv.ParseBool(c.Query("all"))

	data, err := h.streamingService.Fetch(c.Request.Context(), principal(c).UserID, provider, c.Param("resource"), all)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
