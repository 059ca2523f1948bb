package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) PurchaseTickets(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		h.badRequest(c, "invalid event id")
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}

	input, err := purchaseInput(req)
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	purchase, err := h.purchaseService.Purchase(c.Request.Context(), principal(c).UserID, eventID, input)
	if err != nil {
		if status, _ := errorStatus(err); status == http.StatusInternalServerError {
			c.Set("error", err.Error())
			c.JSON(status, dto.ErrorResponse{Message: "Error processing purchase", Error: err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseEnvelope{Message: "Purchase successful", Purchase: dto.ToPurchaseResponse(purchase)})
}

func (h *Handler) GetPurchase(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "invalid purchase id")
		return
	}

	purchase, err := h.purchaseService.GetByID(c.Request.Context(), principal(c).UserID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

func (h *Handler) ConfirmPurchase(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.badRequest(c, "invalid purchase id")
		return
	}

	var req dto.ConfirmPurchaseRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.badRequest(c, err.Error())
			return
		}
	}

	purchase, err := h.purchaseService.Complete(c.Request.Context(), principal(c).UserID, id, req.PaymentReference)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseEnvelope{Message: "Purchase completed", Purchase: dto.ToPurchaseResponse(purchase)})
}

func purchaseInput(req dto.PurchaseRequest) (domain.PurchaseInput, error) {
	input := domain.PurchaseInput{
		TotalAmount:      req.TotalAmount,
		Currency:         req.Currency,
		Status:           domain.PurchaseStatus(req.Status),
		PaymentReference: req.PaymentReference,
	}

	if req.TransactionDate != "" {
		t, err := time.Parse(time.RFC3339, req.TransactionDate)
		if err != nil {
			return domain.PurchaseInput{}, errInvalidTransactionDate
		}
		input.TransactionDate = t
	}

	for _, item := range req.Tickets {
		input.Items = append(input.Items, domain.LineItem{
			Type:       domain.TicketType(item.Ticket.Type),
			Price:      item.Ticket.Price,
			IsRedeemed: item.Ticket.IsRedeemed,
			Count:      item.Count,
		})
	}

	return input, nil
}
