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

// WaybillService handles business logic for waybills
type WaybillService struct {
	repo        repository.WaybillRepositoryInterface
	requestRepo repository.SupplyRequestRepositoryInterface
	validator   *validator.Validate
}

// NewWaybillService creates a new waybill service
func NewWaybillService(
	repo repository.WaybillRepositoryInterface,
	requestRepo repository.SupplyRequestRepositoryInterface,
	validator *validator.Validate,
) *WaybillService {
	return &WaybillService{
		repo:        repo,
		requestRepo: requestRepo,
		validator:   validator,
	}
}

// CreateWaybillRequest represents the request to issue a waybill
type CreateWaybillRequest struct {
	Number          string `json:"number" validate:"required,max=50"`
	Carrier         string `json:"carrier,omitempty" validate:"max=100"`
	OriginPort      string `json:"origin_port,omitempty" validate:"max=100"`
	DestinationPort string `json:"destination_port,omitempty" validate:"max=100"`
}

// UpdateWaybillStatusRequest represents the request to update shipping status
type UpdateWaybillStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// WaybillResponse represents the response for waybill operations
type WaybillResponse struct {
	ID              uuid.UUID            `json:"id"`
	SupplyRequestID uuid.UUID            `json:"supply_request_id"`
	Number          string               `json:"number"`
	Carrier         string               `json:"carrier,omitempty"`
	OriginPort      string               `json:"origin_port,omitempty"`
	DestinationPort string               `json:"destination_port,omitempty"`
	Status          models.WaybillStatus `json:"status"`
	IssuedAt        string               `json:"issued_at"`
	DeliveredAt     string               `json:"delivered_at,omitempty"`
}

// WaybillListResponse represents a paginated list of waybills
type WaybillListResponse struct {
	Waybills []WaybillResponse `json:"waybills"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create issues a waybill against an ordered supply request
func (s *WaybillService) Create(requestID uuid.UUID, req *CreateWaybillRequest) (*WaybillResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplyRequestNotFound
		}
		return nil, fmt.Errorf("failed to get supply request: %w", err)
	}
	if request.Status != models.SupplyStatusOrdered {
		return nil, apperrors.NewValidationError("status", "waybills can only be issued for ordered requests")
	}

	existing, err := s.repo.GetByNumber(req.Number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing waybill: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrWaybillExists
	}

	waybill := &models.Waybill{
		SupplyRequestID: requestID,
		Number:          req.Number,
		Carrier:         req.Carrier,
		OriginPort:      req.OriginPort,
		DestinationPort: req.DestinationPort,
		Status:          models.WaybillStatusIssued,
		IssuedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(waybill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrWaybillExists
		}
		return nil, fmt.Errorf("failed to create waybill: %w", err)
	}

	return s.toResponse(waybill), nil
}

// GetByID retrieves a waybill by ID
func (s *WaybillService) GetByID(id uuid.UUID) (*WaybillResponse, error) {
	waybill, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWaybillNotFound
		}
		return nil, fmt.Errorf("failed to get waybill: %w", err)
	}

	return s.toResponse(waybill), nil
}

// ListBySupplyRequest retrieves a supply request's waybills with pagination
func (s *WaybillService) ListBySupplyRequest(requestID uuid.UUID, page, pageSize int) (*WaybillListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	waybills, total, err := s.repo.ListBySupplyRequest(requestID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list waybills: %w", err)
	}

	responses := make([]WaybillResponse, len(waybills))
	for i, waybill := range waybills {
		responses[i] = *s.toResponse(&waybill)
	}

	return &WaybillListResponse{
		Waybills: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStatus moves a waybill through issued → in_transit → delivered.
// Marking a waybill delivered stamps the delivery time and, when it is the
// request's last open waybill, flips the supply request to delivered.
func (s *WaybillService) UpdateStatus(id uuid.UUID, req *UpdateWaybillStatusRequest) (*WaybillResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	next := models.WaybillStatus(req.Status)
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid waybill status")
	}

	waybill, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWaybillNotFound
		}
		return nil, fmt.Errorf("failed to get waybill: %w", err)
	}

	if !validWaybillTransition(waybill.Status, next) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, waybill.Status, next)
	}

	waybill.Status = next
	if next == models.WaybillStatusDelivered {
		now := time.Now().UTC()
		waybill.DeliveredAt = &now
	}

	if err := s.repo.Update(waybill); err != nil {
		return nil, fmt.Errorf("failed to update waybill: %w", err)
	}

	if next == models.WaybillStatusDelivered {
		if err := s.markRequestDelivered(waybill.SupplyRequestID); err != nil {
			return nil, err
		}
	}

	return s.toResponse(waybill), nil
}

// markRequestDelivered flips the parent request to delivered once all of its
// waybills have arrived
func (s *WaybillService) markRequestDelivered(requestID uuid.UUID) error {
	waybills, _, err := s.repo.ListBySupplyRequest(requestID, 100, 0)
	if err != nil {
		return fmt.Errorf("failed to list waybills: %w", err)
	}
	for _, wb := range waybills {
		if wb.Status != models.WaybillStatusDelivered {
			return nil
		}
	}

	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		return fmt.Errorf("failed to get supply request: %w", err)
	}
	if !request.Status.CanTransitionTo(models.SupplyStatusDelivered) {
		return nil
	}
	request.Status = models.SupplyStatusDelivered
	if err := s.requestRepo.Update(request); err != nil {
		return fmt.Errorf("failed to update supply request: %w", err)
	}
	return nil
}

func validWaybillTransition(from, to models.WaybillStatus) bool {
	switch from {
	case models.WaybillStatusIssued:
		return to == models.WaybillStatusInTransit || to == models.WaybillStatusDelivered
	case models.WaybillStatusInTransit:
		return to == models.WaybillStatusDelivered
	}
	return false
}

// toResponse converts a waybill model to response
func (s *WaybillService) toResponse(waybill *models.Waybill) *WaybillResponse {
	resp := &WaybillResponse{
		ID:              waybill.ID,
		SupplyRequestID: waybill.SupplyRequestID,
		Number:          waybill.Number,
		Carrier:         waybill.Carrier,
		OriginPort:      waybill.OriginPort,
		DestinationPort: waybill.DestinationPort,
		Status:          waybill.Status,
		IssuedAt:        waybill.IssuedAt.Format(time.RFC3339),
	}
	if waybill.DeliveredAt != nil {
		resp.DeliveredAt = waybill.DeliveredAt.Format(time.RFC3339)
	}
	return resp
}
