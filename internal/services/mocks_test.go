package services

import (
	"context"

	"rental-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCarStore
type MockCarStore struct {
	mock.Mock
}

func (m *MockCarStore) Create(ctx context.Context, c *models.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCarStore) Get(ctx context.Context, id int) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}
func (m *MockCarStore) GetByPlate(ctx context.Context, plate string) (*models.Car, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}
func (m *MockCarStore) List(ctx context.Context, status, category string) ([]*models.Car, error) {
	args := m.Called(ctx, status, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Car), args.Error(1)
}
func (m *MockCarStore) Update(ctx context.Context, c *models.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCarStore) UpdateStatus(ctx context.Context, id int, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCarStore) UpdateTechnical(ctx context.Context, c *models.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCarStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarStore) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockCustomerStore
type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) Create(ctx context.Context, c *models.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerStore) Get(ctx context.Context, id int) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}
func (m *MockCustomerStore) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}
func (m *MockCustomerStore) List(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}
func (m *MockCustomerStore) Search(ctx context.Context, q string) ([]*models.Customer, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}
func (m *MockCustomerStore) Update(ctx context.Context, c *models.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalStore
type MockRentalStore struct {
	mock.Mock
}

func (m *MockRentalStore) Get(ctx context.Context, id int) (*models.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rental), args.Error(1)
}
func (m *MockRentalStore) List(ctx context.Context, status string) ([]*models.Rental, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rental), args.Error(1)
}
func (m *MockRentalStore) ListByCar(ctx context.Context, carID int) ([]*models.Rental, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rental), args.Error(1)
}
func (m *MockRentalStore) ListByCustomer(ctx context.Context, customerID int) ([]*models.Rental, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rental), args.Error(1)
}
func (m *MockRentalStore) ListOpenByCar(ctx context.Context, carID int) ([]*models.Rental, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rental), args.Error(1)
}
func (m *MockRentalStore) ListOpen(ctx context.Context) ([]*models.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rental), args.Error(1)
}
func (m *MockRentalStore) CountOpenByCustomer(ctx context.Context, customerID int) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}
func (m *MockRentalStore) CreateWithCarStatus(ctx context.Context, rt *models.Rental, carStatus string) error {
	args := m.Called(ctx, rt, carStatus)
	return args.Error(0)
}
func (m *MockRentalStore) Update(ctx context.Context, rt *models.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalStore) UpdateStatusWithCarStatus(ctx context.Context, id int, status string, carID int, carStatus string) error {
	args := m.Called(ctx, id, status, carID, carStatus)
	return args.Error(0)
}
func (m *MockRentalStore) UpdatePayment(ctx context.Context, id int, paymentStatus string) error {
	args := m.Called(ctx, id, paymentStatus)
	return args.Error(0)
}
func (m *MockRentalStore) DeleteWithCarStatus(ctx context.Context, id, carID int, carStatus string) error {
	args := m.Called(ctx, id, carID, carStatus)
	return args.Error(0)
}
func (m *MockRentalStore) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}
func (m *MockRentalStore) RevenueTotals(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

// MockHistoryStore
type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) Append(ctx context.Context, e *models.TechnicalHistoryEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockHistoryStore) ListByCar(ctx context.Context, carID int) ([]*models.TechnicalHistoryEntry, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TechnicalHistoryEntry), args.Error(1)
}

// MockUserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserStore) Get(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserStore) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *MockUserStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockUserStore) Update(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
