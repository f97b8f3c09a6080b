package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rental-backend/internal/middleware"
	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/internal/ws"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type CarHandler struct {
	Service *services.CarService
	Hub     *ws.Hub
}

func NewCarHandler(s *services.CarService, hub *ws.Hub) *CarHandler {
	return &CarHandler{Service: s, Hub: hub}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	car, err := h.Service.CreateCar(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, car)
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	car, err := h.Service.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, car)
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	category := r.URL.Query().Get("category")

	cars, err := h.Service.ListCars(r.Context(), status, category)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, cars)
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	var req models.UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	car, err := h.Service.UpdateCar(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, car)
}

func (h *CarHandler) UpdateCarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	var req models.UpdateCarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	car, err := h.Service.SetCarStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Hub.CarStatusChanged(car.ID, car.Status)
	utils.JSON(w, http.StatusOK, car)
}

func (h *CarHandler) UpdateCarTechnical(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	var req models.UpdateCarTechnicalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var userID *int
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		userID = &uid
	}

	car, err := h.Service.UpdateCarTechnical(r.Context(), id, &req, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, car)
}

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	if err := h.Service.DeleteCar(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "car deleted"})
}

func (h *CarHandler) ListTechnicalHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid car id")
		return
	}

	history, err := h.Service.ListTechnicalHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, history)
}
