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

// SupplyRequestService handles business logic for supply requests
type SupplyRequestService struct {
	repo       repository.SupplyRequestRepositoryInterface
	vesselRepo repository.VesselRepositoryInterface
	validator  *validator.Validate
}

// NewSupplyRequestService creates a new supply request service
func NewSupplyRequestService(
	repo repository.SupplyRequestRepositoryInterface,
	vesselRepo repository.VesselRepositoryInterface,
	validator *validator.Validate,
) *SupplyRequestService {
	return &SupplyRequestService{
		repo:       repo,
		vesselRepo: vesselRepo,
		validator:  validator,
	}
}

// CreateSupplyRequestRequest represents the request to open a supply request
type CreateSupplyRequestRequest struct {
	Title    string          `json:"title" validate:"required,min=1,max=200"`
	Category string          `json:"category,omitempty"`
	Quantity float64         `json:"quantity,omitempty"`
	Unit     string          `json:"unit,omitempty" validate:"max=50"`
	Notes    string          `json:"notes,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// UpdateSupplyRequestRequest represents the request to update a supply request
type UpdateSupplyRequestRequest struct {
	Title    string          `json:"title" validate:"required,min=1,max=200"`
	Quantity float64         `json:"quantity,omitempty"`
	Unit     string          `json:"unit,omitempty" validate:"max=50"`
	Notes    string          `json:"notes,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// UpdateSupplyStatusRequest represents the request to advance the lifecycle
type UpdateSupplyStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SupplyRequestResponse represents the response for supply request operations
type SupplyRequestResponse struct {
	ID          uuid.UUID             `json:"id"`
	VesselID    uuid.UUID             `json:"vessel_id"`
	RequestedBy uuid.UUID             `json:"requested_by"`
	Title       string                `json:"title"`
	Category    models.SupplyCategory `json:"category"`
	Status      models.SupplyStatus   `json:"status"`
	Quantity    float64               `json:"quantity"`
	Unit        string                `json:"unit,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	Metadata    json.RawMessage       `json:"metadata,omitempty"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// SupplyRequestListResponse represents a paginated list of supply requests
type SupplyRequestListResponse struct {
	Requests []SupplyRequestResponse `json:"requests"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create opens a new supply request for a vessel in draft status
func (s *SupplyRequestService) Create(userID, vesselID uuid.UUID, req *CreateSupplyRequestRequest) (*SupplyRequestResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := models.SupplyCategoryOther
	if req.Category != "" {
		category = models.SupplyCategory(req.Category)
		if !category.IsValid() {
			return nil, apperrors.NewValidationError("category", "invalid supply category")
		}
	}

	if _, err := s.vesselRepo.GetByID(vesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}

	request := &models.SupplyRequest{
		VesselID:    vesselID,
		RequestedBy: userID,
		Title:       req.Title,
		Category:    category,
		Status:      models.SupplyStatusDraft,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Notes:       req.Notes,
		Metadata:    req.Metadata,
	}

	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create supply request: %w", err)
	}

	return s.toResponse(request), nil
}

// GetByID retrieves a supply request by ID
func (s *SupplyRequestService) GetByID(id uuid.UUID) (*SupplyRequestResponse, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplyRequestNotFound
		}
		return nil, fmt.Errorf("failed to get supply request: %w", err)
	}

	return s.toResponse(request), nil
}

// ListByVessel retrieves a vessel's supply requests with pagination
func (s *SupplyRequestService) ListByVessel(vesselID uuid.UUID, page, pageSize int) (*SupplyRequestListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	requests, total, err := s.repo.ListByVessel(vesselID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list supply requests: %w", err)
	}

	responses := make([]SupplyRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = *s.toResponse(&request)
	}

	return &SupplyRequestListResponse{
		Requests: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update edits a supply request's details. Only draft requests are editable.
func (s *SupplyRequestService) Update(id uuid.UUID, req *UpdateSupplyRequestRequest) (*SupplyRequestResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplyRequestNotFound
		}
		return nil, fmt.Errorf("failed to get supply request: %w", err)
	}

	if request.Status != models.SupplyStatusDraft {
		return nil, apperrors.NewValidationError("status", "only draft requests can be edited")
	}

	request.Title = req.Title
	request.Quantity = req.Quantity
	request.Unit = req.Unit
	request.Notes = req.Notes
	if req.Metadata != nil {
		request.Metadata = req.Metadata
	}

	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update supply request: %w", err)
	}

	return s.toResponse(request), nil
}

// UpdateStatus advances the supply request lifecycle. Illegal transitions
// are rejected; the legal steps are draft → submitted → approved → ordered
// → delivered, with cancellation allowed at any point before delivery.
func (s *SupplyRequestService) UpdateStatus(id uuid.UUID, req *UpdateSupplyStatusRequest) (*SupplyRequestResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	next := models.SupplyStatus(req.Status)
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid supply request status")
	}

	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplyRequestNotFound
		}
		return nil, fmt.Errorf("failed to get supply request: %w", err)
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, request.Status, next)
	}

	request.Status = next
	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update supply request: %w", err)
	}

	return s.toResponse(request), nil
}

// Delete removes a supply request
func (s *SupplyRequestService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSupplyRequestNotFound
		}
		return fmt.Errorf("failed to get supply request: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete supply request: %w", err)
	}

	return nil
}

// toResponse converts a supply request model to response
func (s *SupplyRequestService) toResponse(request *models.SupplyRequest) *SupplyRequestResponse {
	return &SupplyRequestResponse{
		ID:          request.ID,
		VesselID:    request.VesselID,
		RequestedBy: request.RequestedBy,
		Title:       request.Title,
		Category:    request.Category,
		Status:      request.Status,
		Quantity:    request.Quantity,
		Unit:        request.Unit,
		Notes:       request.Notes,
		Metadata:    request.Metadata,
		CreatedAt:   request.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   request.UpdatedAt.Format(time.RFC3339),
	}
}
