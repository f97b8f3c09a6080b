package handlers

import (
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, stats)
}
