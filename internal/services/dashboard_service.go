package services

import (
	"context"
	"log"
	"time"

	"rental-backend/internal/cache"
	"rental-backend/internal/models"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardStats is the aggregate view served to the admin dashboard.
type DashboardStats struct {
	Cars           map[string]int `json:"cars"`
	Rentals        map[string]int `json:"rentals"`
	TotalRevenue   float64        `json:"total_revenue"`
	PaidRevenue    float64        `json:"paid_revenue"`
	PendingRevenue float64        `json:"pending_revenue"`
	ActiveRentals  int            `json:"active_rentals"`
	FleetSize      int            `json:"fleet_size"`
}

type DashboardService struct {
	CarStore    CarStore
	RentalStore RentalStore
	Cache       *cache.Client
}

func NewDashboardService(carStore CarStore, rentalStore RentalStore, c *cache.Client) *DashboardService {
	return &DashboardService{CarStore: carStore, RentalStore: rentalStore, Cache: c}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if ok, err := s.Cache.GetJSON(ctx, dashboardCacheKey, &cached); err != nil {
		log.Printf("[Cache] dashboard read failed: %v", err)
	} else if ok {
		return &cached, nil
	}

	carCounts, err := s.CarStore.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	rentalCounts, err := s.RentalStore.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	total, paid, err := s.RentalStore.RevenueTotals(ctx)
	if err != nil {
		return nil, err
	}

	fleet := 0
	for _, n := range carCounts {
		fleet += n
	}

	stats := &DashboardStats{
		Cars:           carCounts,
		Rentals:        rentalCounts,
		TotalRevenue:   total,
		PaidRevenue:    paid,
		PendingRevenue: total - paid,
		ActiveRentals:  rentalCounts[models.RentalStatusActive],
		FleetSize:      fleet,
	}

	if err := s.Cache.SetJSON(ctx, dashboardCacheKey, stats, dashboardCacheTTL); err != nil {
		log.Printf("[Cache] dashboard write failed: %v", err)
	}
	return stats, nil
}
