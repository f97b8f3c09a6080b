package services

import (
	"context"
	"testing"

	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardService_Stats(t *testing.T) {
	cars := new(MockCarStore)
	rentals := new(MockRentalStore)
	s := NewDashboardService(cars, rentals, nil)

	cars.On("CountByStatus", mock.Anything).Return(map[string]int{
		models.CarStatusAvailable:   6,
		models.CarStatusRented:      3,
		models.CarStatusMaintenance: 1,
	}, nil)
	rentals.On("CountByStatus", mock.Anything).Return(map[string]int{
		models.RentalStatusPending:   2,
		models.RentalStatusActive:    3,
		models.RentalStatusCompleted: 14,
	}, nil)
	rentals.On("RevenueTotals", mock.Anything).Return(4800.0, 3600.0, nil)

	stats, err := s.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 10, stats.FleetSize)
	assert.Equal(t, 3, stats.ActiveRentals)
	assert.Equal(t, 4800.0, stats.TotalRevenue)
	assert.Equal(t, 3600.0, stats.PaidRevenue)
	assert.Equal(t, 1200.0, stats.PendingRevenue)
	assert.Equal(t, 2, stats.Rentals[models.RentalStatusPending])
}
