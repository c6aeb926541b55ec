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

// MemberService handles business logic for organization memberships
type MemberService struct {
	repo      repository.OrganizationMemberRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(
	repo repository.OrganizationMemberRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *MemberService {
	return &MemberService{
		repo:      repo,
		orgRepo:   orgRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// AddMemberRequest represents the request to add a member directly,
// bypassing the invitation flow. Reserved for the organization owner.
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// MemberResponse represents the response for membership operations
type MemberResponse struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"user_id"`
	OrganizationID uuid.UUID           `json:"organization_id"`
	Role           models.OrgRole      `json:"role"`
	Status         models.MemberStatus `json:"status"`
	Email          string              `json:"email,omitempty"`
	FirstName      string              `json:"first_name,omitempty"`
	LastName       string              `json:"last_name,omitempty"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Add enrolls a user into an organization without an invitation. The
// caller is expected to be the organization owner; the guard enforces it.
func (s *MemberService) Add(orgID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.OrgRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid organization role")
	}

	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.repo.GetByUserAndOrg(req.UserID, orgID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMemberExists
	}

	member := &models.OrganizationMember{
		UserID:         req.UserID,
		OrganizationID: orgID,
		Role:           role,
		Status:         models.MemberStatusActive,
	}

	if err := s.repo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMemberExists
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return s.toResponse(member), nil
}

// ListByOrganization retrieves the members of an organization with pagination
func (s *MemberService) ListByOrganization(orgID uuid.UUID, page, pageSize int) (*MemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	offset := (page - 1) * pageSize
	members, total, err := s.repo.ListByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.toResponse(&member)
	}

	return &MemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateRole changes a member's organization role
func (s *MemberService) UpdateRole(orgID, userID uuid.UUID, req *UpdateMemberRoleRequest) (*MemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.OrgRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid organization role")
	}

	member, err := s.repo.GetByUserAndOrg(userID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	member.Role = role
	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	return s.toResponse(member), nil
}

// SetStatus changes a member's status (suspend or reactivate)
func (s *MemberService) SetStatus(orgID, userID uuid.UUID, status models.MemberStatus) (*MemberResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid member status")
	}

	member, err := s.repo.GetByUserAndOrg(userID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	member.Status = status
	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	return s.toResponse(member), nil
}

// Remove deletes a user's membership in an organization
func (s *MemberService) Remove(orgID, userID uuid.UUID) error {
	_, err := s.repo.GetByUserAndOrg(userID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if err := s.repo.DeleteByUserAndOrg(userID, orgID); err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}

	return nil
}

// toResponse converts a membership model to response
func (s *MemberService) toResponse(member *models.OrganizationMember) *MemberResponse {
	resp := &MemberResponse{
		ID:             member.ID,
		UserID:         member.UserID,
		OrganizationID: member.OrganizationID,
		Role:           member.Role,
		Status:         member.Status,
		CreatedAt:      member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      member.UpdatedAt.Format(time.RFC3339),
	}
	if member.User != nil {
		resp.Email = member.User.Email
		resp.FirstName = member.User.FirstName
		resp.LastName = member.User.LastName
	}
	return resp
}
