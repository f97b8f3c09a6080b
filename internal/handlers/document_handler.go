package handlers

import (
	"fmt"
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"
)

type DocumentHandler struct {
	Service *services.DocumentService
}

func NewDocumentHandler(s *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: s}
}

func servePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func (h *DocumentHandler) RentalInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	data, err := h.Service.RentalInvoice(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	servePDF(w, fmt.Sprintf("invoice_%d.pdf", id), data)
}

func (h *DocumentHandler) RentalAgreement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	data, err := h.Service.RentalAgreement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	servePDF(w, fmt.Sprintf("agreement_%d.pdf", id), data)
}

func (h *DocumentHandler) CarTechnicalSheet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	data, err := h.Service.CarTechnicalSheet(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	servePDF(w, fmt.Sprintf("technical_%d.pdf", id), data)
}

func (h *DocumentHandler) FleetReport(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.FleetReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	servePDF(w, "fleet_report.pdf", data)
}

func (h *DocumentHandler) BulkTechnicalSheets(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.BulkTechnicalSheets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="technical_sheets.zip"`)
	w.Write(data)
}
