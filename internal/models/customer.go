package models

import "time"

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

type Customer struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	DriverLicense   string    `json:"driver_license"`
	LicenseVerified bool      `json:"license_verified"`
	LicenseImageURL string    `json:"license_image_url,omitempty"`
	Status          string    `json:"status"` // active or inactive
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	DriverLicense   string `json:"driver_license"`
	LicenseImageURL string `json:"license_image_url"`
}

// UpdateCustomerRequest represents the request body for updating a customer
type UpdateCustomerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	DriverLicense   string `json:"driver_license"`
	LicenseVerified *bool  `json:"license_verified,omitempty"`
	LicenseImageURL string `json:"license_image_url"`
	Status          string `json:"status,omitempty"`
}
