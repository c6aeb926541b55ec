package service

import (
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

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	DisplayName string    `json:"display_name" validate:"required,max=200"`
	Description string    `json:"description,omitempty"`
	OwnerID     uuid.UUID `json:"owner_id" validate:"required"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new organization. Only users flagged as organization
// owners at signup may found organizations.
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	owner, err := s.userRepo.GetByID(req.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if owner.UserType != models.UserTypeOrganizationOwner {
		return nil, apperrors.ErrOwnerSignupRequired
	}

	// Check if organization with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}

	if err := s.repo.Create(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(page, pageSize int) (*OrganizationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	orgs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// ListForUser retrieves organizations where the user is the owner or holds
// an active admin/manager membership
func (s *OrganizationService) ListForUser(userID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.repo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations for user: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}
	return responses, nil
}

// Update updates an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.DisplayName = req.DisplayName
	org.Description = req.Description

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

// Delete deletes an organization
func (s *OrganizationService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	return nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		DisplayName: org.DisplayName,
		Description: org.Description,
		OwnerID:     org.OwnerID,
		CreatedAt:   org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   org.UpdatedAt.Format(time.RFC3339),
	}
}
