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

type RentalRepository struct {
	DB *pgxpool.Pool
}

func NewRentalRepository(db *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{DB: db}
}

const rentalColumns = `r.id, r.car_id, r.customer_id, r.start_date, r.end_date, r.status,
       r.total_cost, r.payment_status, r.start_odometer, r.end_odometer,
       r.start_fuel_level, r.end_fuel_level, COALESCE(r.notes, ''),
       c.brand || ' ' || c.model || ' (' || c.license_plate || ')',
       cu.name, r.created_at, r.updated_at`

const rentalJoins = ` FROM rentals r
       JOIN cars c ON r.car_id = c.id
       JOIN customers cu ON r.customer_id = cu.id`

func scanRental(row pgx.Row) (*models.Rental, error) {
	var rt models.Rental
	err := row.Scan(
		&rt.ID, &rt.CarID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.Status,
		&rt.TotalCost, &rt.PaymentStatus, &rt.StartOdometer, &rt.EndOdometer,
		&rt.StartFuelLevel, &rt.EndFuelLevel, &rt.Notes,
		&rt.CarLabel, &rt.CustomerName, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]*models.Rental, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*models.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *RentalRepository) Get(ctx context.Context, id int) (*models.Rental, error) {
	rt, err := scanRental(r.DB.QueryRow(ctx,
		`SELECT `+rentalColumns+rentalJoins+` WHERE r.id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("rental %d: %w", id, booking.ErrNotFound)
	}
	return rt, err
}

// List returns all rentals, optionally filtered by lifecycle status.
func (r *RentalRepository) List(ctx context.Context, status string) ([]*models.Rental, error) {
	if status != "" {
		return r.queryRentals(ctx,
			`SELECT `+rentalColumns+rentalJoins+` WHERE r.status=$1 ORDER BY r.start_date DESC, r.id DESC`, status)
	}
	return r.queryRentals(ctx,
		`SELECT `+rentalColumns+rentalJoins+` ORDER BY r.start_date DESC, r.id DESC`)
}

func (r *RentalRepository) ListByCar(ctx context.Context, carID int) ([]*models.Rental, error) {
	return r.queryRentals(ctx,
		`SELECT `+rentalColumns+rentalJoins+` WHERE r.car_id=$1 ORDER BY r.start_date DESC, r.id DESC`, carID)
}

func (r *RentalRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Rental, error) {
	return r.queryRentals(ctx,
		`SELECT `+rentalColumns+rentalJoins+` WHERE r.customer_id=$1 ORDER BY r.start_date DESC, r.id DESC`, customerID)
}

// ListOpenByCar returns the pending and active rentals for one car,
// the candidate set for the overlap check and the delete guard.
func (r *RentalRepository) ListOpenByCar(ctx context.Context, carID int) ([]*models.Rental, error) {
	return r.queryRentals(ctx,
		`SELECT `+rentalColumns+rentalJoins+`
         WHERE r.car_id=$1 AND r.status = ANY($2)
         ORDER BY r.start_date, r.id`,
		carID, []string{models.RentalStatusPending, models.RentalStatusActive})
}

// ListOpen returns every pending and active rental, used to project
// display statuses over the whole fleet in one query.
func (r *RentalRepository) ListOpen(ctx context.Context) ([]*models.Rental, error) {
	return r.queryRentals(ctx,
		`SELECT `+rentalColumns+rentalJoins+`
         WHERE r.status = ANY($1)
         ORDER BY r.start_date, r.id`,
		[]string{models.RentalStatusPending, models.RentalStatusActive})
}

// CountOpenByCustomer counts pending/active rentals for the customer
// deletion guard.
func (r *RentalRepository) CountOpenByCustomer(ctx context.Context, customerID int) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM rentals WHERE customer_id=$1 AND status = ANY($2)`,
		customerID, []string{models.RentalStatusPending, models.RentalStatusActive}).Scan(&count)
	return count, err
}

func (r *RentalRepository) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// CreateWithCarStatus inserts the rental and, when carStatus is
// non-empty, flips the car's status in the same transaction. The
// insert-then-update pair must not partially apply: the overlap
// invariant depends on it.
func (r *RentalRepository) CreateWithCarStatus(ctx context.Context, rt *models.Rental, carStatus string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO rentals(car_id, customer_id, start_date, end_date, status,
                      total_cost, payment_status, notes)
             VALUES($1, $2, $3, $4, $5, $6, $7, $8)
             RETURNING id, created_at, updated_at`,
			rt.CarID, rt.CustomerID, rt.StartDate, rt.EndDate, rt.Status,
			rt.TotalCost, rt.PaymentStatus, rt.Notes,
		).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
		if err != nil {
			return err
		}
		if carStatus != "" {
			_, err = tx.Exec(ctx,
				`UPDATE cars SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
				carStatus, rt.CarID)
		}
		return err
	})
}

// Update persists date/cost/snapshot/notes changes. Lifecycle status is
// changed only through UpdateStatusWithCarStatus.
func (r *RentalRepository) Update(ctx context.Context, rt *models.Rental) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE rentals SET start_date=$1, end_date=$2, total_cost=$3,
                start_odometer=$4, end_odometer=$5, start_fuel_level=$6, end_fuel_level=$7,
                notes=$8, updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		rt.StartDate, rt.EndDate, rt.TotalCost,
		rt.StartOdometer, rt.EndOdometer, rt.StartFuelLevel, rt.EndFuelLevel,
		rt.Notes, rt.ID)
	return err
}

// UpdateStatusWithCarStatus applies a lifecycle transition and its car
// side effect atomically. carStatus empty means no car change (e.g. the
// car is under a manual maintenance override).
func (r *RentalRepository) UpdateStatusWithCarStatus(ctx context.Context, id int, status string, carID int, carStatus string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE rentals SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`, status, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("rental %d: %w", id, booking.ErrNotFound)
		}
		if carStatus != "" {
			_, err = tx.Exec(ctx,
				`UPDATE cars SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
				carStatus, carID)
		}
		return err
	})
}

func (r *RentalRepository) UpdatePayment(ctx context.Context, id int, paymentStatus string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE rentals SET payment_status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		paymentStatus, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rental %d: %w", id, booking.ErrNotFound)
	}
	return nil
}

// DeleteWithCarStatus removes the rental and, when carStatus is
// non-empty, releases the car in the same transaction.
func (r *RentalRepository) DeleteWithCarStatus(ctx context.Context, id, carID int, carStatus string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM rentals WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("rental %d: %w", id, booking.ErrNotFound)
		}
		if carStatus != "" {
			_, err = tx.Exec(ctx,
				`UPDATE cars SET status=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
				carStatus, carID)
		}
		return err
	})
}

func (r *RentalRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx, `SELECT status, COUNT(*) FROM rentals GROUP BY status`)
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

// RevenueTotals returns overall billed revenue and the portion already
// marked paid, excluding cancelled rentals.
func (r *RentalRepository) RevenueTotals(ctx context.Context) (total, paid float64, err error) {
	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_cost), 0),
                COALESCE(SUM(total_cost) FILTER (WHERE payment_status = $1), 0)
         FROM rentals WHERE status <> $2`,
		models.PaymentStatusPaid, models.RentalStatusCancelled).Scan(&total, &paid)
	return total, paid, err
}
