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

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

const customerColumns = `id, name, email, COALESCE(phone, ''), COALESCE(address, ''),
       COALESCE(driver_license, ''), license_verified, COALESCE(license_image_url, ''),
       status, created_at, updated_at`

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.DriverLicense, &c.LicenseVerified, &c.LicenseImageURL,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO customers(name, email, phone, address, driver_license, license_image_url, status)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.Phone, c.Address, c.DriverLicense, c.LicenseImageURL, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", id, booking.ErrNotFound)
	}
	return c, err
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE email=$1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customer with email %s: %w", email, booking.ErrNotFound)
	}
	return c, err
}

func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Search matches name, email or driver license, case-insensitively.
func (r *CustomerRepository) Search(ctx context.Context, q string) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
         WHERE name ILIKE $1 OR email ILIKE $1 OR driver_license ILIKE $1
         ORDER BY name, id`, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customers SET name=$1, email=$2, phone=$3, address=$4, driver_license=$5,
                license_verified=$6, license_image_url=$7, status=$8, updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		c.Name, c.Email, c.Phone, c.Address, c.DriverLicense,
		c.LicenseVerified, c.LicenseImageURL, c.Status, c.ID)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d: %w", id, booking.ErrNotFound)
	}
	return nil
}
