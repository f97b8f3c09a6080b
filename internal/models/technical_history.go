package models

import "time"

// TechnicalHistoryEntry is an append-only audit record written whenever a
// car's odometer or fuel level changes through the technical-update
// endpoint. Entries are never updated or deleted by normal flow.
type TechnicalHistoryEntry struct {
	ID        int       `json:"id"`
	CarID     int       `json:"car_id"`
	Odometer  int       `json:"odometer"`
	FuelLevel int       `json:"fuel_level"`
	Note      string    `json:"note"`
	UserID    *int      `json:"user_id,omitempty"` // nullable: author may be deleted
	UserName  string    `json:"user_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
