package handlers

import (
	"errors"
	"net/http"

	"rental-backend/internal/booking"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"
)

// writeError maps the booking error taxonomy onto HTTP status codes:
// not-found 404, conflicts 409, invalid input or transitions 400,
// anything unrecognized 500.
func writeError(w http.ResponseWriter, err error) {
	var conflict *booking.ConflictError
	var transition *booking.InvalidTransitionError

	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.As(err, &conflict):
		utils.JSON(w, http.StatusConflict, map[string]interface{}{
			"error":     conflict.Message,
			"conflicts": conflict.Conflicts,
		})
	case errors.As(err, &transition):
		utils.Error(w, http.StatusBadRequest, transition.Error())
	case errors.Is(err, booking.ErrValidation), errors.Is(err, booking.ErrInvalidState):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
