package models

import (
	"time"

	"rental-backend/internal/dateutil"
)

// Persisted car statuses. The "pending" display state shown on the
// dashboard for a reserved-but-not-yet-started car is computed at read
// time and never stored (see booking.DisplayStatus).
const (
	CarStatusAvailable   = "available"
	CarStatusRented      = "rented"
	CarStatusMaintenance = "maintenance"
	CarStatusPending     = "pending"
)

type Car struct {
	ID           int     `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	LicensePlate string  `json:"license_plate"`
	Color        string  `json:"color"`
	Category     string  `json:"category"` // sedan, suv, van, compact, luxury
	DailyRate    float64 `json:"daily_rate"`
	Status       string  `json:"status"`

	// Technical specification group, maintained independently of the
	// rental lifecycle via the technical-update endpoint.
	Odometer           int            `json:"odometer"`
	FuelLevel          int            `json:"fuel_level"` // percent, 0-100
	FuelType           string         `json:"fuel_type"`
	Transmission       string         `json:"transmission"`
	LastServiceDate    *dateutil.Date `json:"last_service_date,omitempty"`
	InsuranceExpiry    *dateutil.Date `json:"insurance_expiry,omitempty"`
	NextInspectionDate *dateutil.Date `json:"next_inspection_date,omitempty"`

	// DisplayStatus is the read-side projection ("pending" for a car
	// occupied by a not-yet-started rental). Filled by the service on
	// list/get, never persisted.
	DisplayStatus string `json:"display_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCarRequest represents the request body for creating a car
type CreateCarRequest struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	LicensePlate string  `json:"license_plate"`
	Color        string  `json:"color"`
	Category     string  `json:"category"`
	DailyRate    float64 `json:"daily_rate"`
	Odometer     int     `json:"odometer"`
	FuelLevel    int     `json:"fuel_level"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
}

// UpdateCarRequest represents the request body for updating a car's base attributes
type UpdateCarRequest struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	LicensePlate string  `json:"license_plate"`
	Color        string  `json:"color"`
	Category     string  `json:"category"`
	DailyRate    float64 `json:"daily_rate"`
}

// UpdateCarStatusRequest is the manual status override (e.g. maintenance)
type UpdateCarStatusRequest struct {
	Status string `json:"status"`
}

// UpdateCarTechnicalRequest carries the technical fields; pointers so the
// handler can tell "not provided" from a zero value
type UpdateCarTechnicalRequest struct {
	Odometer           *int           `json:"odometer,omitempty"`
	FuelLevel          *int           `json:"fuel_level,omitempty"`
	FuelType           *string        `json:"fuel_type,omitempty"`
	Transmission       *string        `json:"transmission,omitempty"`
	LastServiceDate    *dateutil.Date `json:"last_service_date,omitempty"`
	InsuranceExpiry    *dateutil.Date `json:"insurance_expiry,omitempty"`
	NextInspectionDate *dateutil.Date `json:"next_inspection_date,omitempty"`
	Note               string         `json:"note,omitempty"`
}
