package handlers

import (
	"net/http"

	"rental-backend/internal/health"
	"rental-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(c *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: c}
}

func (h *HealthHandler) Basic(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}

func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Checker.CheckDetailed())
}
