package booking

import (
	"rental-backend/internal/dateutil"
	"rental-backend/internal/models"
)

// allowedTransitions is the rental state machine. Completed and
// cancelled are terminal. Cancelling an active rental is permitted
// administratively even though deleting one is not.
var allowedTransitions = map[string][]string{
	models.RentalStatusPending: {models.RentalStatusActive, models.RentalStatusCancelled},
	models.RentalStatusActive:  {models.RentalStatusCompleted, models.RentalStatusCancelled},
}

// CanTransition reports whether a rental may move from one status to
// another. Re-applying the current status is not a valid transition, so
// side effects on the car can never be applied twice.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known rental status.
func ValidStatus(s string) bool {
	switch s {
	case models.RentalStatusPending, models.RentalStatusActive,
		models.RentalStatusCompleted, models.RentalStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case models.PaymentStatusUnpaid, models.PaymentStatusPartial, models.PaymentStatusPaid:
		return true
	}
	return false
}

// CarStatusAfterTransition returns the car status that a rental
// transition implies, or ok=false when the transition has no car side
// effect. A car manually forced into maintenance is exempt: the caller
// must skip the side effect for it (see SyncApplies).
func CarStatusAfterTransition(to string) (string, bool) {
	switch to {
	case models.RentalStatusActive:
		return models.CarStatusRented, true
	case models.RentalStatusCompleted, models.RentalStatusCancelled:
		return models.CarStatusAvailable, true
	}
	return "", false
}

// CarStatusOnCreate returns the car status implied by creating a pending
// rental. A rental starting today occupies the car immediately, before
// explicit activation; a future start leaves the car as-is.
func CarStatusOnCreate(start, today dateutil.Date) (string, bool) {
	if start.Equal(today) {
		return models.CarStatusRented, true
	}
	return "", false
}

// CarStatusOnDelete returns the car status implied by deleting a rental.
// Deleting a pending rental releases the car; other states leave it
// untouched (active rentals cannot be deleted at all).
func CarStatusOnDelete(rentalStatus string) (string, bool) {
	if rentalStatus == models.RentalStatusPending {
		return models.CarStatusAvailable, true
	}
	return "", false
}

// SyncApplies reports whether the status-sync policy may touch a car.
// Maintenance is a manual override and is never reconciled against
// rentals.
func SyncApplies(carStatus string) bool {
	return carStatus != models.CarStatusMaintenance
}

// DisplayStatus computes the read-side status shown on the dashboard.
// A rented car whose occupying rental is still pending, or has a future
// start date, displays as "pending". This is a presentation projection
// and is never persisted.
func DisplayStatus(car *models.Car, occupying *models.Rental, today dateutil.Date) string {
	if occupying == nil {
		return car.Status
	}
	switch {
	case occupying.Status == models.RentalStatusPending:
		return models.CarStatusPending
	case occupying.Status == models.RentalStatusActive && occupying.StartDate.After(today):
		return models.CarStatusPending
	}
	return car.Status
}

// OccupyingRental picks the most relevant open rental for a car: the
// active one if present, otherwise the pending one with the earliest
// start date. Returns nil when the car has no open rentals.
func OccupyingRental(rentals []*models.Rental) *models.Rental {
	var pending *models.Rental
	for _, r := range rentals {
		switch r.Status {
		case models.RentalStatusActive:
			return r
		case models.RentalStatusPending:
			if pending == nil || r.StartDate.Before(pending.StartDate) {
				pending = r
			}
		}
	}
	return pending
}
