package handler

import (
	"net/http"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	user, sid, err := h.authService.Signup(c.Request.Context(), domain.SignupInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSession(c, sid)
	c.JSON(http.StatusCreated, dto.UserEnvelope{Message: "User created", User: dto.ToUserResponse(user)})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	user, sid, err := h.authService.Login(c.Request.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSession(c, sid)
	c.JSON(http.StatusOK, dto.UserEnvelope{Message: "Logged in", User: dto.ToUserResponse(user)})
}

func (h *Handler) Logout(c *ginext.Context) {
	sid, _ := c.Cookie(h.cookie.Name)
	if err := h.authService.Logout(c.Request.Context(), sid); err != nil {
		h.handleError(c, err)
		return
	}

	h.clearSession(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
