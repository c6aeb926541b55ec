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

// VesselService provisions vessels under subscription capacity limits and
// handles vessel CRUD
type VesselService struct {
	vesselRepo     repository.VesselRepositoryInterface
	userVesselRepo repository.UserVesselRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	subRepo        repository.SubscriptionRepositoryInterface
	resolver       MembershipResolverInterface
	txManager      repository.TxManager
	validator      *validator.Validate
}

// NewVesselService creates a new vessel service
func NewVesselService(
	vesselRepo repository.VesselRepositoryInterface,
	userVesselRepo repository.UserVesselRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	subRepo repository.SubscriptionRepositoryInterface,
	resolver MembershipResolverInterface,
	txManager repository.TxManager,
	validator *validator.Validate,
) *VesselService {
	return &VesselService{
		vesselRepo:     vesselRepo,
		userVesselRepo: userVesselRepo,
		orgRepo:        orgRepo,
		subRepo:        subRepo,
		resolver:       resolver,
		txManager:      txManager,
		validator:      validator,
	}
}

// CreateVesselRequest represents the request to create a vessel
type CreateVesselRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Position    string `json:"position,omitempty" example:"vessel_manager"` // creator's vessel role, defaults to crew
	IMONumber   string `json:"imo_number,omitempty" validate:"max=20"`
	Flag        string `json:"flag,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty"`
}

// UpdateVesselRequest represents the request to update a vessel
type UpdateVesselRequest struct {
	Flag        *string `json:"flag,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
}

// VesselResponse represents the response for vessel operations
type VesselResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	IMONumber      string    `json:"imo_number,omitempty"`
	Flag           string    `json:"flag,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// VesselListResponse represents a paginated list of vessels
type VesselListResponse struct {
	Vessels  []VesselResponse `json:"vessels"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create provisions a vessel inside one transaction: privilege check,
// capacity check under the organization row lock, name check, vessel
// insert, and the creator's access row. A failure at any step rolls the
// whole unit back, so no vessel exists without its creator's access row.
func (s *VesselService) Create(userID, organizationID uuid.UUID, req *CreateVesselRequest) (*VesselResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	position := models.VesselRoleCrew
	if req.Position != "" {
		position = models.VesselRole(req.Position)
		if !position.IsValid() {
			return nil, apperrors.NewValidationError("position", "invalid vessel role")
		}
	}

	var created *models.Vessel

	txErr := s.txManager.Transaction(func(tx *gorm.DB) error {
		// Fresh permission read inside the transaction.
		membership, err := s.resolver.WithTx(tx).Resolve(userID, organizationID)
		if err != nil {
			return err
		}
		if !membership.CanCreateVessels() {
			return apperrors.ErrPermissionDenied
		}

		// Lock the organization row so concurrent provisioners serialize
		// on the capacity check.
		orgs := s.orgRepo.WithTx(tx)
		if _, err := orgs.GetByIDForUpdate(organizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOrganizationNotFound
			}
			return fmt.Errorf("failed to lock organization: %w", err)
		}

		vessels := s.vesselRepo.WithTx(tx)

		sub, err := s.subRepo.WithTx(tx).GetActiveByOrganization(organizationID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub != nil && sub.MaxVessels > 0 {
			count, err := vessels.CountByOrganization(organizationID)
			if err != nil {
				return fmt.Errorf("failed to count vessels: %w", err)
			}
			if count >= int64(sub.MaxVessels) {
				return apperrors.NewLimitExceededError("vessel", sub.MaxVessels)
			}
		}

		// Existence check is for a clean error message; the composite
		// unique index on (organization_id, name) is the real guard.
		if _, err := vessels.GetByName(organizationID, req.Name); err == nil {
			return apperrors.ErrVesselExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check vessel name: %w", err)
		}

		vessel := &models.Vessel{
			OrganizationID: organizationID,
			Name:           req.Name,
			IMONumber:      req.IMONumber,
			Flag:           req.Flag,
			Description:    req.Description,
		}
		if err := vessels.Create(vessel); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrVesselExists
			}
			return fmt.Errorf("failed to create vessel: %w", err)
		}

		uv := &models.UserVessel{
			UserID:       userID,
			VesselID:     vessel.ID,
			Role:         position,
			AccessStatus: models.AccessStatusActive,
		}
		if err := s.userVesselRepo.WithTx(tx).Create(uv); err != nil {
			return fmt.Errorf("failed to create creator vessel access: %w", err)
		}

		created = vessel
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.toResponse(created), nil
}

// GetByID retrieves a vessel by ID
func (s *VesselService) GetByID(id uuid.UUID) (*VesselResponse, error) {
	vessel, err := s.vesselRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}
	return s.toResponse(vessel), nil
}

// ListByOrganization retrieves an organization's vessels with pagination
func (s *VesselService) ListByOrganization(orgID uuid.UUID, page, pageSize int) (*VesselListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	vessels, total, err := s.vesselRepo.ListByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vessels: %w", err)
	}

	responses := make([]VesselResponse, len(vessels))
	for i, vessel := range vessels {
		responses[i] = *s.toResponse(&vessel)
	}

	return &VesselListResponse{
		Vessels:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListForUser retrieves vessels the user has active access to
func (s *VesselService) ListForUser(userID uuid.UUID) ([]VesselResponse, error) {
	vessels, err := s.vesselRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vessels for user: %w", err)
	}

	responses := make([]VesselResponse, len(vessels))
	for i, vessel := range vessels {
		responses[i] = *s.toResponse(&vessel)
	}
	return responses, nil
}

// Update updates mutable vessel attributes
func (s *VesselService) Update(id uuid.UUID, req *UpdateVesselRequest) (*VesselResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vessel, err := s.vesselRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}

	if req.Flag != nil {
		vessel.Flag = *req.Flag
	}
	if req.Description != nil {
		vessel.Description = *req.Description
	}

	if err := s.vesselRepo.Update(vessel); err != nil {
		return nil, fmt.Errorf("failed to update vessel: %w", err)
	}

	return s.toResponse(vessel), nil
}

// Delete deletes a vessel
func (s *VesselService) Delete(id uuid.UUID) error {
	_, err := s.vesselRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVesselNotFound
		}
		return fmt.Errorf("failed to get vessel: %w", err)
	}

	if err := s.vesselRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vessel: %w", err)
	}
	return nil
}

// toResponse converts a vessel model to response
func (s *VesselService) toResponse(vessel *models.Vessel) *VesselResponse {
	return &VesselResponse{
		ID:             vessel.ID,
		OrganizationID: vessel.OrganizationID,
		Name:           vessel.Name,
		IMONumber:      vessel.IMONumber,
		Flag:           vessel.Flag,
		Description:    vessel.Description,
		CreatedAt:      vessel.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      vessel.UpdatedAt.Format(time.RFC3339),
	}
}
