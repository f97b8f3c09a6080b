package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-backend/internal/booking"
	"rental-backend/internal/models"
)

type CustomerService struct {
	CustomerStore CustomerStore
	RentalStore   RentalStore
}

func NewCustomerService(customerStore CustomerStore, rentalStore RentalStore) *CustomerService {
	return &CustomerService{CustomerStore: customerStore, RentalStore: rentalStore}
}

func (s *CustomerService) checkEmail(ctx context.Context, email string, excludeID int) error {
	existing, err := s.CustomerStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return &booking.ConflictError{Message: fmt.Sprintf("email %s is already registered", email)}
	}
	return nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" || req.Email == "" || req.DriverLicense == "" {
		return nil, fmt.Errorf("name, email and driver license are required: %w", booking.ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q: %w", email, booking.ErrValidation)
	}
	if err := s.checkEmail(ctx, email, 0); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:            req.Name,
		Email:           email,
		Phone:           req.Phone,
		Address:         req.Address,
		DriverLicense:   req.DriverLicense,
		LicenseImageURL: req.LicenseImageURL,
		Status:          models.CustomerStatusActive,
	}
	if err := s.CustomerStore.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.CustomerStore.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context, query string) ([]*models.Customer, error) {
	if query != "" {
		return s.CustomerStore.Search(ctx, query)
	}
	return s.CustomerStore.List(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.CustomerStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("invalid email %q: %w", email, booking.ErrValidation)
		}
		if err := s.checkEmail(ctx, email, customer.ID); err != nil {
			return nil, err
		}
		customer.Email = email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.DriverLicense != "" {
		customer.DriverLicense = req.DriverLicense
	}
	if req.LicenseVerified != nil {
		customer.LicenseVerified = *req.LicenseVerified
	}
	if req.LicenseImageURL != "" {
		customer.LicenseImageURL = req.LicenseImageURL
	}
	if req.Status != "" {
		if req.Status != models.CustomerStatusActive && req.Status != models.CustomerStatusInactive {
			return nil, fmt.Errorf("unknown customer status %q: %w", req.Status, booking.ErrValidation)
		}
		// Deactivation is blocked while the customer holds open rentals.
		if req.Status == models.CustomerStatusInactive && customer.Status == models.CustomerStatusActive {
			open, err := s.RentalStore.CountOpenByCustomer(ctx, id)
			if err != nil {
				return nil, err
			}
			if open > 0 {
				return nil, fmt.Errorf("customer %d has %d open rental(s): %w", id, open, booking.ErrInvalidState)
			}
		}
		customer.Status = req.Status
	}

	if err := s.CustomerStore.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Blocked only while the customer
// holds open (pending or active) rentals; settled history cascades.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if _, err := s.CustomerStore.Get(ctx, id); err != nil {
		return err
	}
	open, err := s.RentalStore.CountOpenByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return fmt.Errorf("customer %d has %d open rental(s): %w", id, open, booking.ErrInvalidState)
	}
	return s.CustomerStore.Delete(ctx, id)
}
