package service

import (
	"errors"
	"fmt"
	"time"

	"fleet-supply-backend/internal/database/models"
	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionService exposes the read side of subscriptions. Plan rows are
// written by the billing provider; this service only reports limits and usage.
type SubscriptionService struct {
	repo       repository.SubscriptionRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	vesselRepo repository.VesselRepositoryInterface
	memberRepo repository.OrganizationMemberRepositoryInterface
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	repo repository.SubscriptionRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	vesselRepo repository.VesselRepositoryInterface,
	memberRepo repository.OrganizationMemberRepositoryInterface,
) *SubscriptionService {
	return &SubscriptionService{
		repo:       repo,
		orgRepo:    orgRepo,
		vesselRepo: vesselRepo,
		memberRepo: memberRepo,
	}
}

// SubscriptionResponse represents the response for subscription operations
type SubscriptionResponse struct {
	ID               uuid.UUID                 `json:"id"`
	OrganizationID   uuid.UUID                 `json:"organization_id"`
	PlanName         string                    `json:"plan_name"`
	Status           models.SubscriptionStatus `json:"status"`
	MaxVessels       int                       `json:"max_vessels"`
	MaxUsers         int                       `json:"max_users"`
	VesselCount      int64                     `json:"vessel_count"`
	MemberCount      int64                     `json:"member_count"`
	CurrentPeriodEnd string                    `json:"current_period_end"`
}

// GetActiveForOrganization returns the active subscription for an
// organization together with current vessel and member counts, so clients
// can show remaining capacity. A zero limit means unlimited.
func (s *SubscriptionService) GetActiveForOrganization(orgID uuid.UUID) (*SubscriptionResponse, error) {
	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	sub, err := s.repo.GetActiveByOrganization(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	vesselCount, err := s.vesselRepo.CountByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count vessels: %w", err)
	}
	memberCount, err := s.memberRepo.CountActiveByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return &SubscriptionResponse{
		ID:               sub.ID,
		OrganizationID:   sub.OrganizationID,
		PlanName:         sub.PlanName,
		Status:           sub.Status,
		MaxVessels:       sub.MaxVessels,
		MaxUsers:         sub.MaxUsers,
		VesselCount:      vesselCount,
		MemberCount:      memberCount,
		CurrentPeriodEnd: sub.CurrentPeriodEnd.Format(time.RFC3339),
	}, nil
}
