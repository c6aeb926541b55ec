package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fleet-supply-backend/internal/database/models"
	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Email     string          `json:"email" validate:"required,email,max=255"`
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`
	UserType  string          `json:"user_type,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	UserType  models.UserType `json:"user_type"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create registers a new user. The user type is fixed at signup: founders
// register as organization owners, everyone else as regular.
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	userType := models.UserTypeRegular
	if req.UserType != "" {
		userType = models.UserType(req.UserType)
		if !userType.IsValid() {
			return nil, apperrors.NewValidationError("user_type", "invalid user type")
		}
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  userType,
		Metadata:  req.Metadata,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByEmail retrieves a user by email
func (s *UserService) GetByEmail(email string) (*UserResponse, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetAll retrieves all users with pagination
func (s *UserService) GetAll(page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.toResponse(&user)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a user's profile fields
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.Metadata != nil {
		user.Metadata = req.Metadata
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// Delete deletes a user
func (s *UserService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserType:  user.UserType,
		Metadata:  user.Metadata,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
