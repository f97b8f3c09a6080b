package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-backend/internal/auth"
	"rental-backend/internal/booking"
	"rental-backend/internal/models"
)

// ErrInvalidCredentials is returned for a wrong email/password pair and
// for deactivated accounts, without distinguishing the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	UserStore UserStore
	JWT       *auth.JWTManager
}

func NewUserService(userStore UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{UserStore: userStore, JWT: jwtManager}
}

func (s *UserService) checkUserEmail(ctx context.Context, email string, excludeID int) error {
	existing, err := s.UserStore.GetByEmail(ctx, email)
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

// Signup registers the first user as admin; later signups are staff.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("name and email are required: %w", booking.ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", booking.ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.checkUserEmail(ctx, email, 0); err != nil {
		return nil, err
	}

	count, err := s.UserStore.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := "staff"
	if count == 0 {
		role = "admin"
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.UserStore.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.UserStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("name and email are required: %w", booking.ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", booking.ErrValidation)
	}
	if req.Role != "admin" && req.Role != "staff" {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, booking.ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.checkUserEmail(ctx, email, 0); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.UserStore.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.UserStore.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.UserStore.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.UserStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if err := s.checkUserEmail(ctx, email, user.ID); err != nil {
			return nil, err
		}
		user.Email = email
	}
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, fmt.Errorf("password must be at least 8 characters: %w", booking.ErrValidation)
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.Role != "" {
		if req.Role != "admin" && req.Role != "staff" {
			return nil, fmt.Errorf("unknown role %q: %w", req.Role, booking.ErrValidation)
		}
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.UserStore.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserStore.Delete(ctx, id)
}
