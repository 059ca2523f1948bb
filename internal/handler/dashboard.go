package handler

import (
	"net/http"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Dashboard(c *ginext.Context) {
	d, err := h.dashboardService.Get(c.Request.Context(), principal(c).UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}
