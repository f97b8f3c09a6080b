package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rental-backend/internal/booking"
	"rental-backend/internal/cache"
	"rental-backend/internal/dateutil"
	"rental-backend/internal/models"
)

const (
	fleetCacheKey = "fleet:list"
	fleetCacheTTL = 2 * time.Minute
)

// CarService manages the fleet. Status writes through here are the
// manual override path (maintenance and back); rental-driven status
// changes go through RentalService.
type CarService struct {
	CarStore     CarStore
	RentalStore  RentalStore
	HistoryStore TechnicalHistoryStore
	Cache        *cache.Client

	Today func() dateutil.Date
}

func NewCarService(carStore CarStore, rentalStore RentalStore, historyStore TechnicalHistoryStore, c *cache.Client) *CarService {
	return &CarService{
		CarStore:     carStore,
		RentalStore:  rentalStore,
		HistoryStore: historyStore,
		Cache:        c,
		Today:        dateutil.Today,
	}
}

func validCarCategory(cat string) bool {
	switch cat {
	case "sedan", "suv", "van", "compact", "luxury":
		return true
	}
	return false
}

func (s *CarService) checkPlate(ctx context.Context, plate string, excludeID int) error {
	existing, err := s.CarStore.GetByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return &booking.ConflictError{Message: fmt.Sprintf("license plate %s is already registered", plate)}
	}
	return nil
}

func (s *CarService) CreateCar(ctx context.Context, req *models.CreateCarRequest) (*models.Car, error) {
	if req.Brand == "" || req.Model == "" || req.LicensePlate == "" {
		return nil, fmt.Errorf("brand, model and license plate are required: %w", booking.ErrValidation)
	}
	if req.DailyRate <= 0 {
		return nil, fmt.Errorf("daily rate must be positive: %w", booking.ErrValidation)
	}
	if !validCarCategory(req.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", req.Category, booking.ErrValidation)
	}
	if req.FuelLevel < 0 || req.FuelLevel > 100 {
		return nil, fmt.Errorf("fuel level must be between 0 and 100: %w", booking.ErrValidation)
	}

	plate := strings.ToUpper(strings.TrimSpace(req.LicensePlate))
	if err := s.checkPlate(ctx, plate, 0); err != nil {
		return nil, err
	}

	car := &models.Car{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: plate,
		Color:        req.Color,
		Category:     req.Category,
		DailyRate:    req.DailyRate,
		Status:       models.CarStatusAvailable,
		Odometer:     req.Odometer,
		FuelLevel:    req.FuelLevel,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
	}
	if err := s.CarStore.Create(ctx, car); err != nil {
		return nil, err
	}
	s.invalidateFleet(ctx)
	return car, nil
}

// GetCar returns a car with its display status projected from the open
// rentals (a reserved car shows as "pending" until its rental starts).
func (s *CarService) GetCar(ctx context.Context, id int) (*models.Car, error) {
	car, err := s.CarStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	open, err := s.RentalStore.ListOpenByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	car.DisplayStatus = booking.DisplayStatus(car, booking.OccupyingRental(open), s.Today())
	return car, nil
}

// ListCars returns the fleet with display statuses. The unfiltered list
// is cached briefly; filtered queries always hit the database.
func (s *CarService) ListCars(ctx context.Context, status, category string) ([]*models.Car, error) {
	cacheable := status == "" && category == ""
	if cacheable {
		var cached []*models.Car
		if ok, err := s.Cache.GetJSON(ctx, fleetCacheKey, &cached); err != nil {
			log.Printf("[Cache] fleet read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	cars, err := s.CarStore.List(ctx, status, category)
	if err != nil {
		return nil, err
	}

	open, err := s.RentalStore.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	openByCar := make(map[int][]*models.Rental)
	for _, r := range open {
		openByCar[r.CarID] = append(openByCar[r.CarID], r)
	}
	today := s.Today()
	for _, car := range cars {
		car.DisplayStatus = booking.DisplayStatus(car, booking.OccupyingRental(openByCar[car.ID]), today)
	}

	if cacheable {
		if err := s.Cache.SetJSON(ctx, fleetCacheKey, cars, fleetCacheTTL); err != nil {
			log.Printf("[Cache] fleet write failed: %v", err)
		}
	}
	return cars, nil
}

func (s *CarService) UpdateCar(ctx context.Context, id int, req *models.UpdateCarRequest) (*models.Car, error) {
	car, err := s.CarStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Brand != "" {
		car.Brand = req.Brand
	}
	if req.Model != "" {
		car.Model = req.Model
	}
	if req.Year != 0 {
		car.Year = req.Year
	}
	if req.LicensePlate != "" {
		plate := strings.ToUpper(strings.TrimSpace(req.LicensePlate))
		if err := s.checkPlate(ctx, plate, car.ID); err != nil {
			return nil, err
		}
		car.LicensePlate = plate
	}
	if req.Color != "" {
		car.Color = req.Color
	}
	if req.Category != "" {
		if !validCarCategory(req.Category) {
			return nil, fmt.Errorf("unknown category %q: %w", req.Category, booking.ErrValidation)
		}
		car.Category = req.Category
	}
	if req.DailyRate != 0 {
		if req.DailyRate < 0 {
			return nil, fmt.Errorf("daily rate must be positive: %w", booking.ErrValidation)
		}
		car.DailyRate = req.DailyRate
	}

	if err := s.CarStore.Update(ctx, car); err != nil {
		return nil, err
	}
	s.invalidateFleet(ctx)
	return car, nil
}

// SetCarStatus is the manual override. Only persisted statuses are
// accepted; "pending" exists purely as a display projection. Forcing a
// car out of rotation while it holds open rentals is rejected unless the
// target is maintenance, which is exactly what the override is for.
func (s *CarService) SetCarStatus(ctx context.Context, id int, status string) (*models.Car, error) {
	switch status {
	case models.CarStatusAvailable, models.CarStatusRented, models.CarStatusMaintenance:
	default:
		return nil, fmt.Errorf("status %q cannot be set directly: %w", status, booking.ErrValidation)
	}

	car, err := s.CarStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == models.CarStatusAvailable {
		open, err := s.RentalStore.ListOpenByCar(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(open) > 0 {
			return nil, fmt.Errorf("car %d has %d open rental(s): %w", id, len(open), booking.ErrInvalidState)
		}
	}

	if err := s.CarStore.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	car.Status = status
	s.invalidateFleet(ctx)
	return car, nil
}

// UpdateCarTechnical applies the technical fields the request carries
// and appends an audit entry. The odometer never moves backwards. The
// history write is best effort: a failure is logged, not returned.
func (s *CarService) UpdateCarTechnical(ctx context.Context, id int, req *models.UpdateCarTechnicalRequest, userID *int) (*models.Car, error) {
	car, err := s.CarStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Odometer != nil {
		if *req.Odometer < car.Odometer {
			return nil, fmt.Errorf("odometer cannot decrease (%d -> %d): %w", car.Odometer, *req.Odometer, booking.ErrValidation)
		}
		car.Odometer = *req.Odometer
	}
	if req.FuelLevel != nil {
		if *req.FuelLevel < 0 || *req.FuelLevel > 100 {
			return nil, fmt.Errorf("fuel level must be between 0 and 100: %w", booking.ErrValidation)
		}
		car.FuelLevel = *req.FuelLevel
	}
	if req.FuelType != nil {
		car.FuelType = *req.FuelType
	}
	if req.Transmission != nil {
		car.Transmission = *req.Transmission
	}
	if req.LastServiceDate != nil {
		car.LastServiceDate = req.LastServiceDate
	}
	if req.InsuranceExpiry != nil {
		car.InsuranceExpiry = req.InsuranceExpiry
	}
	if req.NextInspectionDate != nil {
		car.NextInspectionDate = req.NextInspectionDate
	}

	if err := s.CarStore.UpdateTechnical(ctx, car); err != nil {
		return nil, err
	}

	// Only odometer and fuel readings are audited; date or spec-only
	// updates leave no history entry.
	if req.Odometer != nil || req.FuelLevel != nil {
		entry := &models.TechnicalHistoryEntry{
			CarID:     car.ID,
			Odometer:  car.Odometer,
			FuelLevel: car.FuelLevel,
			Note:      req.Note,
			UserID:    userID,
		}
		if err := s.HistoryStore.Append(ctx, entry); err != nil {
			log.Printf("[History] append failed for car %d: %v", car.ID, err)
		}
	}

	s.invalidateFleet(ctx)
	return car, nil
}

// DeleteCar removes a car. Blocked only while the car holds open
// (pending or active) rentals; completed and cancelled history goes
// with it via the FK cascade.
func (s *CarService) DeleteCar(ctx context.Context, id int) error {
	if _, err := s.CarStore.Get(ctx, id); err != nil {
		return err
	}
	open, err := s.RentalStore.ListOpenByCar(ctx, id)
	if err != nil {
		return err
	}
	if len(open) > 0 {
		return fmt.Errorf("car %d has %d open rental(s): %w", id, len(open), booking.ErrInvalidState)
	}
	if err := s.CarStore.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFleet(ctx)
	return nil
}

func (s *CarService) ListTechnicalHistory(ctx context.Context, carID int) ([]*models.TechnicalHistoryEntry, error) {
	if _, err := s.CarStore.Get(ctx, carID); err != nil {
		return nil, err
	}
	return s.HistoryStore.ListByCar(ctx, carID)
}

func (s *CarService) invalidateFleet(ctx context.Context) {
	if err := s.Cache.Delete(ctx, fleetCacheKey, dashboardCacheKey); err != nil {
		log.Printf("[Cache] fleet invalidation failed: %v", err)
	}
}
