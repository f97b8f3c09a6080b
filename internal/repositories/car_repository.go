package repositories

import (
	"context"
	"errors"
	"fmt"

	"rental-backend/internal/booking"
	"rental-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository struct {
	DB *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) *CarRepository {
	return &CarRepository{DB: db}
}

const carColumns = `id, brand, model, year, license_plate, color, category, daily_rate, status,
       odometer, fuel_level, COALESCE(fuel_type, ''), COALESCE(transmission, ''),
       last_service_date, insurance_expiry, next_inspection_date, created_at, updated_at`

func scanCar(row pgx.Row) (*models.Car, error) {
	var car models.Car
	err := row.Scan(
		&car.ID, &car.Brand, &car.Model, &car.Year, &car.LicensePlate, &car.Color,
		&car.Category, &car.DailyRate, &car.Status,
		&car.Odometer, &car.FuelLevel, &car.FuelType, &car.Transmission,
		&car.LastServiceDate, &car.InsuranceExpiry, &car.NextInspectionDate,
		&car.CreatedAt, &car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *CarRepository) Create(ctx context.Context, c *models.Car) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO cars(brand, model, year, license_plate, color, category, daily_rate, status,
                  odometer, fuel_level, fuel_type, transmission)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
         RETURNING id, created_at, updated_at`,
		c.Brand, c.Model, c.Year, c.LicensePlate, c.Color, c.Category, c.DailyRate, c.Status,
		c.Odometer, c.FuelLevel, c.FuelType, c.Transmission,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CarRepository) Get(ctx context.Context, id int) (*models.Car, error) {
	car, err := scanCar(r.DB.QueryRow(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("car %d: %w", id, booking.ErrNotFound)
	}
	return car, err
}

func (r *CarRepository) GetByPlate(ctx context.Context, plate string) (*models.Car, error) {
	car, err := scanCar(r.DB.QueryRow(ctx,
		`SELECT `+carColumns+` FROM cars WHERE license_plate=$1`, plate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("car with plate %s: %w", plate, booking.ErrNotFound)
	}
	return car, err
}

// List returns all cars, optionally filtered by persisted status and/or category.
func (r *CarRepository) List(ctx context.Context, status, category string) ([]*models.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE 1=1`
	var args []interface{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status=$%d", len(args))
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category=$%d", len(args))
	}
	query += " ORDER BY brand, model, id"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []*models.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *CarRepository) Update(ctx context.Context, c *models.Car) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE cars SET brand=$1, model=$2, year=$3, license_plate=$4, color=$5,
                category=$6, daily_rate=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		c.Brand, c.Model, c.Year, c.LicensePlate, c.Color, c.Category, c.DailyRate, c.ID)
	return err
}

func (r *CarRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE cars SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %d: %w", id, booking.ErrNotFound)
	}
	return nil
}

// UpdateTechnical persists the technical-specification group after the
// service has merged the provided fields into the car.
func (r *CarRepository) UpdateTechnical(ctx context.Context, c *models.Car) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE cars SET odometer=$1, fuel_level=$2, fuel_type=$3, transmission=$4,
                last_service_date=$5, insurance_expiry=$6, next_inspection_date=$7,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		c.Odometer, c.FuelLevel, c.FuelType, c.Transmission,
		c.LastServiceDate, c.InsuranceExpiry, c.NextInspectionDate, c.ID)
	return err
}

// Delete removes a car; technical history rows cascade via FK.
func (r *CarRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM cars WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %d: %w", id, booking.ErrNotFound)
	}
	return nil
}

func (r *CarRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx, `SELECT status, COUNT(*) FROM cars GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
