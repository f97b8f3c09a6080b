package services

import (
	"context"

	"rental-backend/internal/models"
)

// Store interfaces consumed by the services. The pgx repositories in
// internal/repositories satisfy them; tests substitute mocks. Services
// never reach for a shared pool directly.

type CarStore interface {
	Create(ctx context.Context, c *models.Car) error
	Get(ctx context.Context, id int) (*models.Car, error)
	GetByPlate(ctx context.Context, plate string) (*models.Car, error)
	List(ctx context.Context, status, category string) ([]*models.Car, error)
	Update(ctx context.Context, c *models.Car) error
	UpdateStatus(ctx context.Context, id int, status string) error
	UpdateTechnical(ctx context.Context, c *models.Car) error
	Delete(ctx context.Context, id int) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) error
	Get(ctx context.Context, id int) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Search(ctx context.Context, q string) ([]*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id int) error
}

type RentalStore interface {
	Get(ctx context.Context, id int) (*models.Rental, error)
	List(ctx context.Context, status string) ([]*models.Rental, error)
	ListByCar(ctx context.Context, carID int) ([]*models.Rental, error)
	ListByCustomer(ctx context.Context, customerID int) ([]*models.Rental, error)
	ListOpenByCar(ctx context.Context, carID int) ([]*models.Rental, error)
	ListOpen(ctx context.Context) ([]*models.Rental, error)
	CountOpenByCustomer(ctx context.Context, customerID int) (int, error)
	CreateWithCarStatus(ctx context.Context, rt *models.Rental, carStatus string) error
	Update(ctx context.Context, rt *models.Rental) error
	UpdateStatusWithCarStatus(ctx context.Context, id int, status string, carID int, carStatus string) error
	UpdatePayment(ctx context.Context, id int, paymentStatus string) error
	DeleteWithCarStatus(ctx context.Context, id, carID int, carStatus string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
	RevenueTotals(ctx context.Context) (total, paid float64, err error)
}

type TechnicalHistoryStore interface {
	Append(ctx context.Context, e *models.TechnicalHistoryEntry) error
	ListByCar(ctx context.Context, carID int) ([]*models.TechnicalHistoryEntry, error)
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int) error
}
