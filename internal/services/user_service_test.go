package services

import (
	"context"
	"testing"

	"rental-backend/internal/auth"
	"rental-backend/internal/booking"
	"rental-backend/internal/config"
	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testJWTManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-not-for-production"
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "rental-backend-test"
	return auth.NewJWTManager(cfg)
}

func TestUserService_Signup(t *testing.T) {
	t.Run("first user becomes admin", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("GetByEmail", mock.Anything, "owner@example.com").Return(nil, booking.ErrNotFound)
		users.On("Count", mock.Anything).Return(0, nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == "admin" && u.IsActive
		})).Return(nil)

		resp, err := s.Signup(context.Background(), &models.SignupRequest{
			Name: "Owner", Email: "Owner@Example.com", Password: "longenough",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.User.Role)
		assert.Equal(t, "owner@example.com", resp.User.Email)
		users.AssertExpectations(t)
	})

	t.Run("later signups are staff", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("GetByEmail", mock.Anything, "second@example.com").Return(nil, booking.ErrNotFound)
		users.On("Count", mock.Anything).Return(1, nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == "staff"
		})).Return(nil)

		resp, err := s.Signup(context.Background(), &models.SignupRequest{
			Name: "Second", Email: "second@example.com", Password: "longenough",
		})

		assert.NoError(t, err)
		assert.Equal(t, "staff", resp.User.Role)
	})

	t.Run("short password", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		_, err := s.Signup(context.Background(), &models.SignupRequest{
			Name: "Owner", Email: "owner@example.com", Password: "short",
		})

		assert.ErrorIs(t, err, booking.ErrValidation)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("GetByEmail", mock.Anything, "owner@example.com").Return(&models.User{ID: 1}, nil)

		_, err := s.Signup(context.Background(), &models.SignupRequest{
			Name: "Owner", Email: "owner@example.com", Password: "longenough",
		})

		var conflict *booking.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})
}

func TestUserService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(t, err)
	stored := &models.User{
		ID: 1, Email: "owner@example.com", PasswordHash: hash,
		Role: "admin", IsActive: true,
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("GetByEmail", mock.Anything, "owner@example.com").Return(stored, nil)

		resp, err := s.Login(context.Background(), &models.LoginRequest{
			Email: "owner@example.com", Password: "correct-horse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		claims, err := testJWTManager().ValidateToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("GetByEmail", mock.Anything, "owner@example.com").Return(stored, nil)

		_, err := s.Login(context.Background(), &models.LoginRequest{
			Email: "owner@example.com", Password: "wrong",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, booking.ErrNotFound)

		_, err := s.Login(context.Background(), &models.LoginRequest{
			Email: "nobody@example.com", Password: "correct-horse",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		inactive := *stored
		inactive.IsActive = false
		users.On("GetByEmail", mock.Anything, "owner@example.com").Return(&inactive, nil)

		_, err := s.Login(context.Background(), &models.LoginRequest{
			Email: "owner@example.com", Password: "correct-horse",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("role validation", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("Get", mock.Anything, 1).Return(&models.User{ID: 1, Role: "staff"}, nil)

		_, err := s.UpdateUser(context.Background(), 1, &models.UpdateUserRequest{Role: "accountant"})

		assert.ErrorIs(t, err, booking.ErrValidation)
	})

	t.Run("deactivation flag", func(t *testing.T) {
		users := new(MockUserStore)
		s := NewUserService(users, testJWTManager())

		users.On("Get", mock.Anything, 1).Return(&models.User{ID: 1, Role: "staff", IsActive: true}, nil)
		users.On("Update", mock.Anything, mock.Anything).Return(nil)

		active := false
		user, err := s.UpdateUser(context.Background(), 1, &models.UpdateUserRequest{IsActive: &active})

		assert.NoError(t, err)
		assert.False(t, user.IsActive)
	})
}
