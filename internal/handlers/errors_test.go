package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-backend/internal/booking"
	"rental-backend/internal/dateutil"
	"rental-backend/internal/models"
	"rental-backend/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("rental 9: %w", booking.ErrNotFound), http.StatusNotFound},
		{"validation", fmt.Errorf("bad date: %w", booking.ErrValidation), http.StatusBadRequest},
		{"invalid state", fmt.Errorf("car is rented: %w", booking.ErrInvalidState), http.StatusBadRequest},
		{"invalid transition", &booking.InvalidTransitionError{From: "completed", To: "active"}, http.StatusBadRequest},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)

			assert.Equal(t, tc.want, rec.Code)
			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestWriteErrorConflictBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, &booking.ConflictError{
		Message: "requested dates overlap an existing rental for this car",
		Conflicts: []*models.Rental{
			{ID: 7, CarID: 1, Status: models.RentalStatusActive,
				StartDate: dateutil.New(2025, time.June, 1),
				EndDate:   dateutil.New(2025, time.June, 5)},
		},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error     string `json:"error"`
		Conflicts []struct {
			ID        int    `json:"id"`
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		} `json:"conflicts"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Conflicts, 1)
	assert.Equal(t, 7, body.Conflicts[0].ID)
	assert.Equal(t, "2025-06-01", body.Conflicts[0].StartDate)
	assert.Equal(t, "2025-06-05", body.Conflicts[0].EndDate)
}
