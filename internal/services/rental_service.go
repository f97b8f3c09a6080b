package services

import (
	"context"
	"fmt"
	"log"

	"rental-backend/internal/booking"
	"rental-backend/internal/cache"
	"rental-backend/internal/dateutil"
	"rental-backend/internal/metrics"
	"rental-backend/internal/models"
)

// RentalService owns the rental lifecycle: availability and overlap
// checks at creation, the status state machine, and the car-status side
// effects that keep Car.status consistent with the car's rentals.
type RentalService struct {
	RentalStore   RentalStore
	CarStore      CarStore
	CustomerStore CustomerStore
	Cache         *cache.Client

	// Today is injectable so the same-day occupation rule is testable.
	Today func() dateutil.Date
}

func NewRentalService(rentalStore RentalStore, carStore CarStore, customerStore CustomerStore, c *cache.Client) *RentalService {
	return &RentalService{
		RentalStore:   rentalStore,
		CarStore:      carStore,
		CustomerStore: customerStore,
		Cache:         c,
		Today:         dateutil.Today,
	}
}

func (s *RentalService) invalidate(ctx context.Context) {
	if err := s.Cache.Delete(ctx, fleetCacheKey, dashboardCacheKey); err != nil {
		log.Printf("[Cache] invalidation failed: %v", err)
	}
}

func parseRange(startStr, endStr string) (start, end dateutil.Date, err error) {
	start, err = dateutil.Parse(startStr)
	if err != nil {
		return start, end, fmt.Errorf("%v: %w", err, booking.ErrValidation)
	}
	end, err = dateutil.Parse(endStr)
	if err != nil {
		return start, end, fmt.Errorf("%v: %w", err, booking.ErrValidation)
	}
	if end.Before(start) {
		return start, end, fmt.Errorf("end date %s is before start date %s: %w", end, start, booking.ErrValidation)
	}
	return start, end, nil
}

// CreateRental validates the request, runs the overlap check and
// inserts the rental as pending. A rental starting today occupies the
// car immediately; the insert and the car-status flip commit together.
func (s *RentalService) CreateRental(ctx context.Context, req *models.CreateRentalRequest) (*models.Rental, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.TotalCost <= 0 {
		return nil, fmt.Errorf("total cost must be positive: %w", booking.ErrValidation)
	}

	car, err := s.CarStore.Get(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if car.Status != models.CarStatusAvailable {
		return nil, fmt.Errorf("car %d is %s, not available: %w", car.ID, car.Status, booking.ErrInvalidState)
	}

	customer, err := s.CustomerStore.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.Status != models.CustomerStatusActive {
		return nil, fmt.Errorf("customer %d is inactive: %w", customer.ID, booking.ErrInvalidState)
	}

	open, err := s.RentalStore.ListOpenByCar(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if conflicts := booking.FindConflicts(start, end, open, 0); len(conflicts) > 0 {
		metrics.BookingConflicts.Inc()
		return nil, &booking.ConflictError{
			Message:   "requested dates overlap an existing rental for this car",
			Conflicts: conflicts,
		}
	}

	rental := &models.Rental{
		CarID:         req.CarID,
		CustomerID:    req.CustomerID,
		StartDate:     start,
		EndDate:       end,
		Status:        models.RentalStatusPending,
		TotalCost:     req.TotalCost,
		PaymentStatus: models.PaymentStatusUnpaid,
		Notes:         req.Notes,
	}

	carStatus, _ := booking.CarStatusOnCreate(start, s.Today())
	if err := s.RentalStore.CreateWithCarStatus(ctx, rental, carStatus); err != nil {
		return nil, err
	}
	metrics.RentalsCreated.Inc()
	s.invalidate(ctx)
	return rental, nil
}

// UpdateRental changes dates, cost, condition snapshots or notes. A
// completed rental accepts only notes changes; a date change re-runs
// the overlap check excluding the rental itself.
func (s *RentalService) UpdateRental(ctx context.Context, id int, req *models.UpdateRentalRequest) (*models.Rental, error) {
	rental, err := s.RentalStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if rental.Status == models.RentalStatusCompleted {
		if req.StartDate != "" || req.EndDate != "" || req.TotalCost != nil ||
			req.StartOdometer != nil || req.EndOdometer != nil ||
			req.StartFuelLevel != nil || req.EndFuelLevel != nil {
			return nil, fmt.Errorf("completed rental: only notes may be changed: %w", booking.ErrInvalidState)
		}
	}

	datesChanged := req.StartDate != "" || req.EndDate != ""
	if datesChanged {
		startStr := req.StartDate
		if startStr == "" {
			startStr = rental.StartDate.String()
		}
		endStr := req.EndDate
		if endStr == "" {
			endStr = rental.EndDate.String()
		}
		start, end, err := parseRange(startStr, endStr)
		if err != nil {
			return nil, err
		}

		open, err := s.RentalStore.ListOpenByCar(ctx, rental.CarID)
		if err != nil {
			return nil, err
		}
		if conflicts := booking.FindConflicts(start, end, open, rental.ID); len(conflicts) > 0 {
			return nil, &booking.ConflictError{
				Message:   "new dates overlap an existing rental for this car",
				Conflicts: conflicts,
			}
		}
		rental.StartDate = start
		rental.EndDate = end
	}

	if req.TotalCost != nil {
		if *req.TotalCost <= 0 {
			return nil, fmt.Errorf("total cost must be positive: %w", booking.ErrValidation)
		}
		rental.TotalCost = *req.TotalCost
	}
	if req.StartOdometer != nil {
		rental.StartOdometer = req.StartOdometer
	}
	if req.EndOdometer != nil {
		rental.EndOdometer = req.EndOdometer
	}
	if req.StartFuelLevel != nil {
		rental.StartFuelLevel = req.StartFuelLevel
	}
	if req.EndFuelLevel != nil {
		rental.EndFuelLevel = req.EndFuelLevel
	}
	if req.Notes != nil {
		rental.Notes = *req.Notes
	}

	if err := s.RentalStore.Update(ctx, rental); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return rental, nil
}

// UpdateRentalStatus applies a lifecycle transition and syncs the car.
// Cars under a manual maintenance override are left untouched.
func (s *RentalService) UpdateRentalStatus(ctx context.Context, id int, newStatus string) (*models.Rental, error) {
	if !booking.ValidStatus(newStatus) {
		return nil, fmt.Errorf("unknown rental status %q: %w", newStatus, booking.ErrValidation)
	}

	rental, err := s.RentalStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.CanTransition(rental.Status, newStatus) {
		return nil, &booking.InvalidTransitionError{From: rental.Status, To: newStatus}
	}

	carStatus, hasEffect := booking.CarStatusAfterTransition(newStatus)
	if hasEffect {
		car, err := s.CarStore.Get(ctx, rental.CarID)
		if err != nil {
			return nil, err
		}
		if !booking.SyncApplies(car.Status) {
			carStatus = ""
		}
	} else {
		carStatus = ""
	}

	if err := s.RentalStore.UpdateStatusWithCarStatus(ctx, rental.ID, newStatus, rental.CarID, carStatus); err != nil {
		return nil, err
	}
	rental.Status = newStatus
	s.invalidate(ctx)
	return rental, nil
}

// UpdateRentalPayment sets the payment status, which is tracked
// independently of the lifecycle.
func (s *RentalService) UpdateRentalPayment(ctx context.Context, id int, paymentStatus string) (*models.Rental, error) {
	if !booking.ValidPaymentStatus(paymentStatus) {
		return nil, fmt.Errorf("unknown payment status %q: %w", paymentStatus, booking.ErrValidation)
	}
	rental, err := s.RentalStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.RentalStore.UpdatePayment(ctx, id, paymentStatus); err != nil {
		return nil, err
	}
	rental.PaymentStatus = paymentStatus
	s.invalidate(ctx)
	return rental, nil
}

// DeleteRental removes a rental. Active rentals cannot be deleted;
// deleting a pending one releases the car (unless it sits in
// maintenance).
func (s *RentalService) DeleteRental(ctx context.Context, id int) error {
	rental, err := s.RentalStore.Get(ctx, id)
	if err != nil {
		return err
	}
	if rental.Status == models.RentalStatusActive {
		return fmt.Errorf("active rental cannot be deleted: %w", booking.ErrInvalidState)
	}

	carStatus, release := booking.CarStatusOnDelete(rental.Status)
	if release {
		car, err := s.CarStore.Get(ctx, rental.CarID)
		if err != nil {
			return err
		}
		if !booking.SyncApplies(car.Status) {
			carStatus = ""
		}
	}
	if err := s.RentalStore.DeleteWithCarStatus(ctx, rental.ID, rental.CarID, carStatus); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RentalService) GetRental(ctx context.Context, id int) (*models.Rental, error) {
	return s.RentalStore.Get(ctx, id)
}

func (s *RentalService) ListRentals(ctx context.Context, status string) ([]*models.Rental, error) {
	if status != "" && !booking.ValidStatus(status) {
		return nil, fmt.Errorf("unknown rental status %q: %w", status, booking.ErrValidation)
	}
	return s.RentalStore.List(ctx, status)
}

func (s *RentalService) ListRentalsByCar(ctx context.Context, carID int) ([]*models.Rental, error) {
	return s.RentalStore.ListByCar(ctx, carID)
}

func (s *RentalService) ListRentalsByCustomer(ctx context.Context, customerID int) ([]*models.Rental, error) {
	return s.RentalStore.ListByCustomer(ctx, customerID)
}
