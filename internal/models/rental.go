package models

import (
	"time"

	"rental-backend/internal/dateutil"
)

// Rental lifecycle states. Pending is the initial state; completed and
// cancelled are terminal.
const (
	RentalStatusPending   = "pending"
	RentalStatusActive    = "active"
	RentalStatusCompleted = "completed"
	RentalStatusCancelled = "cancelled"
)

// Payment states, tracked independently of the rental lifecycle.
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

type Rental struct {
	ID         int           `json:"id"`
	CarID      int           `json:"car_id"`
	CustomerID int           `json:"customer_id"`
	StartDate  dateutil.Date `json:"start_date"`
	EndDate    dateutil.Date `json:"end_date"` // inclusive
	Status     string        `json:"status"`
	TotalCost  float64       `json:"total_cost"`
	PaymentStatus string     `json:"payment_status"`

	// Vehicle condition snapshots taken at handover and return.
	StartOdometer  *int `json:"start_odometer,omitempty"`
	EndOdometer    *int `json:"end_odometer,omitempty"`
	StartFuelLevel *int `json:"start_fuel_level,omitempty"`
	EndFuelLevel   *int `json:"end_fuel_level,omitempty"`

	Notes string `json:"notes"`

	// Denormalized for list views, joined from cars/customers.
	CarLabel     string `json:"car_label,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRentalRequest represents the request body for creating a rental
type CreateRentalRequest struct {
	CarID      int     `json:"car_id"`
	CustomerID int     `json:"customer_id"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	TotalCost  float64 `json:"total_cost"`
	Notes      string  `json:"notes"`
}

// UpdateRentalRequest represents the request body for updating a rental's
// dates, cost, condition snapshots or notes
type UpdateRentalRequest struct {
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	TotalCost      *float64 `json:"total_cost,omitempty"`
	StartOdometer  *int     `json:"start_odometer,omitempty"`
	EndOdometer    *int     `json:"end_odometer,omitempty"`
	StartFuelLevel *int     `json:"start_fuel_level,omitempty"`
	EndFuelLevel   *int     `json:"end_fuel_level,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// UpdateRentalStatusRequest represents a lifecycle transition request
type UpdateRentalStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRentalPaymentRequest represents a payment status change
type UpdateRentalPaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}
