package handlers

import (
	"encoding/json"
	"net/http"

	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/internal/ws"
	"rental-backend/pkg/utils"
)

type RentalHandler struct {
	Service *services.RentalService
	Hub     *ws.Hub
}

func NewRentalHandler(s *services.RentalService, hub *ws.Hub) *RentalHandler {
	return &RentalHandler{Service: s, Hub: hub}
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.Service.CreateRental(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Hub.RentalStatusChanged(rental.ID, rental.CarID, rental.Status)
	utils.JSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	rental, err := h.Service.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.Service.ListRentals(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	rentals, err := h.Service.ListRentalsByCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	rentals, err := h.Service.ListRentalsByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req models.UpdateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.Service.UpdateRental(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) UpdateRentalStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req models.UpdateRentalStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.Service.UpdateRentalStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Hub.RentalStatusChanged(rental.ID, rental.CarID, rental.Status)
	utils.JSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) UpdateRentalPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req models.UpdateRentalPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.Service.UpdateRentalPayment(r.Context(), id, req.PaymentStatus)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	if err := h.Service.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "rental deleted"})
}
