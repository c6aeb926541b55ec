package service

import (
	"errors"
	"fmt"

	"fleet-supply-backend/internal/database/models"
	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrivilegeSource names where a user's effective privilege in an
// organization comes from, so the rule stays auditable instead of being a
// boolean threaded through conditionals.
type PrivilegeSource string

const (
	PrivilegeSourceOwner PrivilegeSource = "owner"
	PrivilegeSourceRole  PrivilegeSource = "role"
	PrivilegeSourceNone  PrivilegeSource = "none"
)

// Membership is the computed effective permission set of a user within an
// organization. OrgRole is nil when the user holds no membership row.
type Membership struct {
	UserID         uuid.UUID       `json:"user_id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	IsOwner        bool            `json:"is_owner"`
	OrgRole        *models.OrgRole `json:"org_role,omitempty"`
	Source         PrivilegeSource `json:"source"`
}

// Privileged reports whether the user may perform privileged organization
// actions: the owner, or an active admin/manager member. A user's global
// type grants nothing in organizations they do not own or belong to.
func (m *Membership) Privileged() bool {
	return m.Source != PrivilegeSourceNone
}

// CanCreateVessels and CanInviteMembers are separate named capabilities so
// they can diverge later; today both reduce to Privileged.

// CanCreateVessels reports whether the user may provision vessels
func (m *Membership) CanCreateVessels() bool {
	return m.Privileged()
}

// CanInviteMembers reports whether the user may issue invitations
func (m *Membership) CanInviteMembers() bool {
	return m.Privileged()
}

// VesselAccess is the computed vessel-scoped permission of a user
type VesselAccess struct {
	UserID   uuid.UUID          `json:"user_id"`
	VesselID uuid.UUID          `json:"vessel_id"`
	Role     *models.VesselRole `json:"role,omitempty"`
	Active   bool               `json:"active"`
}

// MembershipService computes effective permissions from persisted state.
// It is read-only and safe to call without a transaction; callers that need
// permission checks inside a transaction bind it with WithTx.
type MembershipService struct {
	orgRepo        repository.OrganizationRepositoryInterface
	memberRepo     repository.OrganizationMemberRepositoryInterface
	userVesselRepo repository.UserVesselRepositoryInterface
	vesselRepo     repository.VesselRepositoryInterface
}

// NewMembershipService creates a new membership resolver
func NewMembershipService(
	orgRepo repository.OrganizationRepositoryInterface,
	memberRepo repository.OrganizationMemberRepositoryInterface,
	userVesselRepo repository.UserVesselRepositoryInterface,
	vesselRepo repository.VesselRepositoryInterface,
) *MembershipService {
	return &MembershipService{
		orgRepo:        orgRepo,
		memberRepo:     memberRepo,
		userVesselRepo: userVesselRepo,
		vesselRepo:     vesselRepo,
	}
}

// WithTx returns a resolver whose reads run inside the given transaction
func (s *MembershipService) WithTx(tx *gorm.DB) MembershipResolverInterface {
	return &MembershipService{
		orgRepo:        s.orgRepo.WithTx(tx),
		memberRepo:     s.memberRepo.WithTx(tx),
		userVesselRepo: s.userVesselRepo.WithTx(tx),
		vesselRepo:     s.vesselRepo.WithTx(tx),
	}
}

// Resolve computes the user's effective permissions within an organization
func (s *MembershipService) Resolve(userID, organizationID uuid.UUID) (*Membership, error) {
	org, err := s.orgRepo.GetByID(organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	membership := &Membership{
		UserID:         userID,
		OrganizationID: organizationID,
		Source:         PrivilegeSourceNone,
	}

	if org.OwnerID == userID {
		membership.IsOwner = true
		membership.Source = PrivilegeSourceOwner
	}

	member, err := s.memberRepo.GetByUserAndOrg(userID, organizationID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get membership: %w", err)
		}
		return membership, nil
	}

	// Suspended or pending memberships carry the role for display but
	// confer no privilege.
	role := member.Role
	membership.OrgRole = &role
	if !membership.IsOwner && member.Status == models.MemberStatusActive &&
		(role == models.OrgRoleAdmin || role == models.OrgRoleManager) {
		membership.Source = PrivilegeSourceRole
	}

	return membership, nil
}

// ResolveVessel computes the user's vessel-scoped access. Vessel access is
// independent from the organization role: the vessel's organization owner
// and privileged members are also treated as having access.
func (s *MembershipService) ResolveVessel(userID, vesselID uuid.UUID) (*VesselAccess, error) {
	vessel, err := s.vesselRepo.GetByID(vesselID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVesselNotFound
		}
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}

	access := &VesselAccess{UserID: userID, VesselID: vesselID}

	uv, err := s.userVesselRepo.GetByUserAndVessel(userID, vesselID)
	if err == nil {
		role := uv.Role
		access.Role = &role
		access.Active = uv.AccessStatus == models.AccessStatusActive
		if access.Active {
			return access, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get vessel access: %w", err)
	}

	// No active access row; fall back to organization privilege.
	membership, err := s.Resolve(userID, vessel.OrganizationID)
	if err != nil {
		return nil, err
	}
	access.Active = membership.Privileged()

	return access, nil
}
