package service

import (
	"crypto/rand"
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

// codeAlphabet excludes ambiguous characters so codes survive being read
// aloud or typed from a printed sheet.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// maxCodeAttempts bounds retries on the (unlikely) unique-index collision
// when generating a fresh code.
const maxCodeAttempts = 5

// InvitationService handles issuing and redeeming single-use invitation codes
type InvitationService struct {
	invitationRepo repository.InvitationRepositoryInterface
	memberRepo     repository.OrganizationMemberRepositoryInterface
	userVesselRepo repository.UserVesselRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	vesselRepo     repository.VesselRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	txManager      repository.TxManager
	validator      *validator.Validate
	ttl            time.Duration
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	invitationRepo repository.InvitationRepositoryInterface,
	memberRepo repository.OrganizationMemberRepositoryInterface,
	userVesselRepo repository.UserVesselRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	vesselRepo repository.VesselRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	txManager repository.TxManager,
	validator *validator.Validate,
	ttl time.Duration,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		memberRepo:     memberRepo,
		userVesselRepo: userVesselRepo,
		orgRepo:        orgRepo,
		vesselRepo:     vesselRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		validator:      validator,
		ttl:            ttl,
	}
}

// IssueInvitationRequest represents the request to issue an invitation
type IssueInvitationRequest struct {
	InvitedBy      uuid.UUID  `json:"invited_by" validate:"required"`
	Email          string     `json:"email" validate:"required,email,max=255"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	VesselID       *uuid.UUID `json:"vessel_id,omitempty"`
	OrgRole        string     `json:"org_role,omitempty" example:"member"`
	VesselRole     string     `json:"vessel_role,omitempty" example:"crew"`
}

// InvitationResponse represents the response for invitation operations
type InvitationResponse struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	Email          string     `json:"email"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	VesselID       *uuid.UUID `json:"vessel_id,omitempty"`
	OrgRole        string     `json:"org_role"`
	VesselRole     string     `json:"vessel_role"`
	InvitedBy      uuid.UUID  `json:"invited_by"`
	Status         string     `json:"status"`
	ExpiresAt      string     `json:"expires_at"`
	CreatedAt      string     `json:"created_at"`
}

// InvitationListResponse represents a paginated list of invitations
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// RedeemInvitationRequest represents the request to redeem a code
type RedeemInvitationRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

// RedeemInvitationResponse carries the membership rows created (or found)
// by a successful redemption
type RedeemInvitationResponse struct {
	OrganizationMember *models.OrganizationMember `json:"organization_member,omitempty"`
	UserVessel         *models.UserVessel         `json:"user_vessel,omitempty"`
}

// Issue generates a single-use invitation code. The caller's privilege for
// the target organization is enforced upstream by the access guard.
func (s *InvitationService) Issue(req *IssueInvitationRequest) (*InvitationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.OrganizationID == nil && req.VesselID == nil {
		return nil, apperrors.ErrInvitationScopeMissing
	}

	orgRole := models.OrgRoleMember
	if req.OrgRole != "" {
		orgRole = models.OrgRole(req.OrgRole)
		if !orgRole.IsValid() {
			return nil, apperrors.NewValidationError("org_role", "invalid organization role")
		}
	}

	vesselRole := models.VesselRoleCrew
	if req.VesselRole != "" {
		vesselRole = models.VesselRole(req.VesselRole)
		if !vesselRole.IsValid() {
			return nil, apperrors.NewValidationError("vessel_role", "invalid vessel role")
		}
	}

	// Check referenced entities exist
	if _, err := s.userRepo.GetByID(req.InvitedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get inviter: %w", err)
	}
	if req.OrganizationID != nil {
		if _, err := s.orgRepo.GetByID(*req.OrganizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to get organization: %w", err)
		}
	}
	if req.VesselID != nil {
		vessel, err := s.vesselRepo.GetByID(*req.VesselID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrVesselNotFound
			}
			return nil, fmt.Errorf("failed to get vessel: %w", err)
		}
		// A vessel scope must stay within the organization the caller is
		// privileged for.
		if req.OrganizationID != nil && vessel.OrganizationID != *req.OrganizationID {
			return nil, apperrors.NewValidationError("vessel_id", "vessel does not belong to this organization")
		}
	}

	invitation := &models.Invitation{
		Email:          req.Email,
		OrganizationID: req.OrganizationID,
		VesselID:       req.VesselID,
		OrgRole:        orgRole,
		VesselRole:     vesselRole,
		InvitedBy:      req.InvitedBy,
		Status:         models.InvitationStatusPending,
		ExpiresAt:      time.Now().Add(s.ttl),
	}

	// The code column carries a unique index; regenerate on collision.
	var lastErr error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateInvitationCode(models.InvitationCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate invitation code: %w", err)
		}
		invitation.Code = code

		lastErr = s.invitationRepo.Create(invitation)
		if lastErr == nil {
			return s.toResponse(invitation), nil
		}
		if !errors.Is(lastErr, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create invitation: %w", lastErr)
		}
	}

	return nil, fmt.Errorf("failed to create invitation after %d attempts: %w", maxCodeAttempts, lastErr)
}

// Redeem atomically consumes an invitation code and creates the membership
// rows it grants. Concurrent redeemers of the same code serialize on the
// invitation row; exactly one succeeds, the rest observe it consumed.
func (s *InvitationService) Redeem(code string, userID uuid.UUID) (*RedeemInvitationResponse, error) {
	req := &RedeemInvitationRequest{Code: code}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	result := &RedeemInvitationResponse{}
	var expiredInvitation *models.Invitation

	txErr := s.txManager.Transaction(func(tx *gorm.DB) error {
		invitations := s.invitationRepo.WithTx(tx)

		invitation, err := invitations.GetByCodeForUpdate(code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvitationNotFound
			}
			return fmt.Errorf("failed to get invitation: %w", err)
		}

		switch invitation.Status {
		case models.InvitationStatusConsumed:
			return apperrors.ErrInvitationAlreadyUsed
		case models.InvitationStatusExpired:
			return apperrors.ErrInvitationExpired
		case models.InvitationStatusRevoked:
			return apperrors.ErrInvitationRevoked
		}

		now := time.Now()
		if invitation.IsExpired(now) {
			expiredInvitation = invitation
			return apperrors.ErrInvitationExpired
		}

		if invitation.OrganizationID != nil {
			member, err := s.redeemOrganizationMember(tx, invitation, user.ID)
			if err != nil {
				return err
			}
			result.OrganizationMember = member
		}

		if invitation.VesselID != nil {
			uv, err := s.redeemUserVessel(tx, invitation, user.ID)
			if err != nil {
				return err
			}
			result.UserVessel = uv
		}

		invitation.Status = models.InvitationStatusConsumed
		invitation.ConsumedBy = &user.ID
		invitation.ConsumedAt = &now
		if err := invitations.Update(invitation); err != nil {
			return fmt.Errorf("failed to consume invitation: %w", err)
		}

		return nil
	})

	if txErr != nil {
		// The expiry transition rolled back with the transaction; persist
		// it best-effort so later lookups are cheap.
		if expiredInvitation != nil && errors.Is(txErr, apperrors.ErrInvitationExpired) {
			expiredInvitation.Status = models.InvitationStatusExpired
			_ = s.invitationRepo.Update(expiredInvitation)
		}
		return nil, txErr
	}

	return result, nil
}

// redeemOrganizationMember creates the organization membership granted by
// the invitation. An existing row makes this an idempotent no-op.
func (s *InvitationService) redeemOrganizationMember(tx *gorm.DB, invitation *models.Invitation, userID uuid.UUID) (*models.OrganizationMember, error) {
	members := s.memberRepo.WithTx(tx)

	existing, err := members.GetByUserAndOrg(userID, *invitation.OrganizationID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	member := &models.OrganizationMember{
		UserID:         userID,
		OrganizationID: *invitation.OrganizationID,
		Role:           invitation.OrgRole,
		Status:         models.MemberStatusActive,
	}
	if err := members.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return member, nil
}

// redeemUserVessel creates the vessel access row granted by the invitation.
// An existing row makes this an idempotent no-op.
func (s *InvitationService) redeemUserVessel(tx *gorm.DB, invitation *models.Invitation, userID uuid.UUID) (*models.UserVessel, error) {
	userVessels := s.userVesselRepo.WithTx(tx)

	existing, err := userVessels.GetByUserAndVessel(userID, *invitation.VesselID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get vessel access: %w", err)
	}

	uv := &models.UserVessel{
		UserID:       userID,
		VesselID:     *invitation.VesselID,
		Role:         invitation.VesselRole,
		AccessStatus: models.AccessStatusActive,
	}
	if err := userVessels.Create(uv); err != nil {
		return nil, fmt.Errorf("failed to create vessel access: %w", err)
	}
	return uv, nil
}

// ListByOrganization retrieves invitations issued for an organization
func (s *InvitationService) ListByOrganization(orgID uuid.UUID, page, pageSize int) (*InvitationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	invitations, total, err := s.invitationRepo.ListByOrganization(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]InvitationResponse, len(invitations))
	for i, invitation := range invitations {
		responses[i] = *s.toResponse(&invitation)
	}

	return &InvitationListResponse{
		Invitations: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Revoke marks a pending invitation as revoked so it can no longer be
// redeemed. The invitation must belong to the given organization; an
// invitation scoped elsewhere is reported as not found.
func (s *InvitationService) Revoke(orgID, id uuid.UUID) error {
	return s.txManager.Transaction(func(tx *gorm.DB) error {
		invitations := s.invitationRepo.WithTx(tx)

		invitation, err := invitations.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvitationNotFound
			}
			return fmt.Errorf("failed to get invitation: %w", err)
		}

		if invitation.OrganizationID == nil || *invitation.OrganizationID != orgID {
			return apperrors.ErrInvitationNotFound
		}

		if invitation.Status == models.InvitationStatusConsumed {
			return apperrors.ErrInvitationAlreadyUsed
		}

		invitation.Status = models.InvitationStatusRevoked
		if err := invitations.Update(invitation); err != nil {
			return fmt.Errorf("failed to revoke invitation: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an invitation by ID
func (s *InvitationService) GetByID(id uuid.UUID) (*InvitationResponse, error) {
	invitation, err := s.invitationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return s.toResponse(invitation), nil
}

// generateInvitationCode returns a random fixed-length code drawn from the
// unambiguous alphabet
func generateInvitationCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf), nil
}

// toResponse converts an invitation model to response
func (s *InvitationService) toResponse(invitation *models.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:             invitation.ID,
		Code:           invitation.Code,
		Email:          invitation.Email,
		OrganizationID: invitation.OrganizationID,
		VesselID:       invitation.VesselID,
		OrgRole:        string(invitation.OrgRole),
		VesselRole:     string(invitation.VesselRole),
		InvitedBy:      invitation.InvitedBy,
		Status:         string(invitation.Status),
		ExpiresAt:      invitation.ExpiresAt.Format(time.RFC3339),
		CreatedAt:      invitation.CreatedAt.Format(time.RFC3339),
	}
}
