package booking

import (
	"testing"
	"time"

	"rental-backend/internal/dateutil"
	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{models.RentalStatusPending, models.RentalStatusActive},
		{models.RentalStatusPending, models.RentalStatusCancelled},
		{models.RentalStatusActive, models.RentalStatusCompleted},
		{models.RentalStatusActive, models.RentalStatusCancelled},
	}
	for _, p := range allowed {
		assert.True(t, CanTransition(p[0], p[1]), "%s -> %s", p[0], p[1])
	}

	denied := [][2]string{
		{models.RentalStatusPending, models.RentalStatusCompleted},
		{models.RentalStatusCompleted, models.RentalStatusActive},
		{models.RentalStatusCompleted, models.RentalStatusCancelled},
		{models.RentalStatusCancelled, models.RentalStatusPending},
		{models.RentalStatusCancelled, models.RentalStatusActive},
		{models.RentalStatusActive, models.RentalStatusPending},
		// Re-applying the current status must not slip through.
		{models.RentalStatusPending, models.RentalStatusPending},
		{models.RentalStatusActive, models.RentalStatusActive},
	}
	for _, p := range denied {
		assert.False(t, CanTransition(p[0], p[1]), "%s -> %s", p[0], p[1])
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(models.RentalStatusPending))
	assert.True(t, ValidStatus(models.RentalStatusCancelled))
	assert.False(t, ValidStatus("returned"))
	assert.False(t, ValidStatus(""))

	assert.True(t, ValidPaymentStatus(models.PaymentStatusPartial))
	assert.False(t, ValidPaymentStatus("refunded"))
}

func TestCarStatusAfterTransition(t *testing.T) {
	status, ok := CarStatusAfterTransition(models.RentalStatusActive)
	assert.True(t, ok)
	assert.Equal(t, models.CarStatusRented, status)

	status, ok = CarStatusAfterTransition(models.RentalStatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, models.CarStatusAvailable, status)

	status, ok = CarStatusAfterTransition(models.RentalStatusCancelled)
	assert.True(t, ok)
	assert.Equal(t, models.CarStatusAvailable, status)

	_, ok = CarStatusAfterTransition(models.RentalStatusPending)
	assert.False(t, ok)
}

func TestCarStatusOnCreate(t *testing.T) {
	today := dateutil.New(2025, time.June, 1)

	status, ok := CarStatusOnCreate(today, today)
	assert.True(t, ok)
	assert.Equal(t, models.CarStatusRented, status)

	_, ok = CarStatusOnCreate(today.AddDays(3), today)
	assert.False(t, ok)
}

func TestCarStatusOnDelete(t *testing.T) {
	status, ok := CarStatusOnDelete(models.RentalStatusPending)
	assert.True(t, ok)
	assert.Equal(t, models.CarStatusAvailable, status)

	for _, s := range []string{models.RentalStatusCompleted, models.RentalStatusCancelled, models.RentalStatusActive} {
		_, ok := CarStatusOnDelete(s)
		assert.False(t, ok, s)
	}
}

func TestSyncApplies(t *testing.T) {
	assert.True(t, SyncApplies(models.CarStatusAvailable))
	assert.True(t, SyncApplies(models.CarStatusRented))
	assert.False(t, SyncApplies(models.CarStatusMaintenance))
}

func TestDisplayStatus(t *testing.T) {
	today := dateutil.New(2025, time.June, 10)

	t.Run("no occupying rental passes status through", func(t *testing.T) {
		car := &models.Car{Status: models.CarStatusAvailable}
		assert.Equal(t, models.CarStatusAvailable, DisplayStatus(car, nil, today))
	})

	t.Run("pending occupant shows pending", func(t *testing.T) {
		car := &models.Car{Status: models.CarStatusRented}
		occ := &models.Rental{Status: models.RentalStatusPending, StartDate: today, EndDate: today.AddDays(2)}
		assert.Equal(t, models.CarStatusPending, DisplayStatus(car, occ, today))
	})

	t.Run("active occupant with future start shows pending", func(t *testing.T) {
		car := &models.Car{Status: models.CarStatusRented}
		occ := &models.Rental{Status: models.RentalStatusActive, StartDate: today.AddDays(1), EndDate: today.AddDays(5)}
		assert.Equal(t, models.CarStatusPending, DisplayStatus(car, occ, today))
	})

	t.Run("active occupant in progress shows the stored status", func(t *testing.T) {
		car := &models.Car{Status: models.CarStatusRented}
		occ := &models.Rental{Status: models.RentalStatusActive, StartDate: today.AddDays(-1), EndDate: today.AddDays(5)}
		assert.Equal(t, models.CarStatusRented, DisplayStatus(car, occ, today))
	})

	t.Run("maintenance is never masked", func(t *testing.T) {
		car := &models.Car{Status: models.CarStatusMaintenance}
		occ := &models.Rental{Status: models.RentalStatusActive, StartDate: today.AddDays(-1), EndDate: today.AddDays(5)}
		assert.Equal(t, models.CarStatusMaintenance, DisplayStatus(car, occ, today))
	})
}

func TestOccupyingRental(t *testing.T) {
	active := &models.Rental{ID: 1, Status: models.RentalStatusActive, StartDate: d(10)}
	early := &models.Rental{ID: 2, Status: models.RentalStatusPending, StartDate: d(3)}
	late := &models.Rental{ID: 3, Status: models.RentalStatusPending, StartDate: d(20)}

	assert.Nil(t, OccupyingRental(nil))
	assert.Equal(t, active, OccupyingRental([]*models.Rental{late, active, early}))
	assert.Equal(t, early, OccupyingRental([]*models.Rental{late, early}))
}
