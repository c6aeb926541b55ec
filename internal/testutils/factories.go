package testutils

import (
	"fmt"
	"time"

	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email embeds part of
// the UUID so repeated calls do not collide on the unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     fmt.Sprintf("crew-%s@test.com", id.String()[:8]),
		FirstName: "Jonas",
		LastName:  "Laine",
		UserType:  models.UserTypeRegular,
	}
}

// Owner creates a test User of the organization-owner type
func (f *UserFactory) Owner() *models.User {
	user := f.Create()
	user.UserType = models.UserTypeOrganizationOwner
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create(ownerID uuid.UUID) *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        fmt.Sprintf("fleet-%s", id.String()[:8]),
		DisplayName: "Test Fleet Operator",
		Description: "A test fleet operator",
		OwnerID:     ownerID,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(ownerID uuid.UUID, name string) *models.Organization {
	org := f.Create(ownerID)
	org.Name = name
	org.DisplayName = name
	return org
}

// MemberFactory provides methods to create test OrganizationMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test active membership with the given role
func (f *MemberFactory) Create(userID, orgID uuid.UUID, role models.OrgRole) *models.OrganizationMember {
	return &models.OrganizationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
		Status:         models.MemberStatusActive,
	}
}

// Suspended creates a suspended membership with the given role
func (f *MemberFactory) Suspended(userID, orgID uuid.UUID, role models.OrgRole) *models.OrganizationMember {
	member := f.Create(userID, orgID, role)
	member.Status = models.MemberStatusSuspended
	return member
}

// VesselFactory provides methods to create test Vessel data
type VesselFactory struct{}

// NewVesselFactory creates a new VesselFactory
func NewVesselFactory() *VesselFactory {
	return &VesselFactory{}
}

// Create creates a test Vessel with default values
func (f *VesselFactory) Create(orgID uuid.UUID) *models.Vessel {
	id := uuid.New()
	return &models.Vessel{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           fmt.Sprintf("MV Test %s", id.String()[:8]),
		IMONumber:      "IMO 9074729",
		Flag:           "Panama",
		Description:    "A test vessel",
	}
}

// WithName sets a custom name for the vessel
func (f *VesselFactory) WithName(orgID uuid.UUID, name string) *models.Vessel {
	vessel := f.Create(orgID)
	vessel.Name = name
	return vessel
}

// UserVesselFactory provides methods to create test UserVessel data
type UserVesselFactory struct{}

// NewUserVesselFactory creates a new UserVesselFactory
func NewUserVesselFactory() *UserVesselFactory {
	return &UserVesselFactory{}
}

// Create creates an active vessel access grant with the given role
func (f *UserVesselFactory) Create(userID, vesselID uuid.UUID, role models.VesselRole) *models.UserVessel {
	return &models.UserVessel{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:       userID,
		VesselID:     vesselID,
		Role:         role,
		AccessStatus: models.AccessStatusActive,
	}
}

// Revoked creates a revoked vessel access grant
func (f *UserVesselFactory) Revoked(userID, vesselID uuid.UUID, role models.VesselRole) *models.UserVessel {
	uv := f.Create(userID, vesselID, role)
	uv.AccessStatus = models.AccessStatusRevoked
	return uv
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending organization invitation valid for 72 hours
func (f *InvitationFactory) Create(orgID, invitedBy uuid.UUID) *models.Invitation {
	id := uuid.New()
	return &models.Invitation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:           codeFromUUID(id),
		Email:          fmt.Sprintf("invitee-%s@test.com", id.String()[:8]),
		OrganizationID: &orgID,
		OrgRole:        models.OrgRoleMember,
		VesselRole:     models.VesselRoleCrew,
		InvitedBy:      invitedBy,
		Status:         models.InvitationStatusPending,
		ExpiresAt:      time.Now().Add(72 * time.Hour),
	}
}

// WithVessel scopes the invitation to a vessel as well
func (f *InvitationFactory) WithVessel(orgID, vesselID, invitedBy uuid.UUID) *models.Invitation {
	inv := f.Create(orgID, invitedBy)
	inv.VesselID = &vesselID
	return inv
}

// Expired creates an invitation whose validity window has passed
func (f *InvitationFactory) Expired(orgID, invitedBy uuid.UUID) *models.Invitation {
	inv := f.Create(orgID, invitedBy)
	inv.ExpiresAt = time.Now().Add(-time.Hour)
	return inv
}

// codeFromUUID derives a deterministic 6-character uppercase code from the
// invitation's own ID, keeping factory-created codes unique.
func codeFromUUID(id uuid.UUID) string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	code := make([]byte, models.InvitationCodeLength)
	for i := range code {
		code[i] = alphabet[int(id[i])%len(alphabet)]
	}
	return string(code)
}

// SubscriptionFactory provides methods to create test Subscription data
type SubscriptionFactory struct{}

// NewSubscriptionFactory creates a new SubscriptionFactory
func NewSubscriptionFactory() *SubscriptionFactory {
	return &SubscriptionFactory{}
}

// Create creates an active subscription with the given vessel cap
func (f *SubscriptionFactory) Create(orgID uuid.UUID, maxVessels int) *models.Subscription {
	return &models.Subscription{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:   orgID,
		PlanName:         "coastal",
		Status:           models.SubscriptionStatusActive,
		MaxVessels:       maxVessels,
		MaxUsers:         50,
		CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour),
	}
}

// SupplyRequestFactory provides methods to create test SupplyRequest data
type SupplyRequestFactory struct{}

// NewSupplyRequestFactory creates a new SupplyRequestFactory
func NewSupplyRequestFactory() *SupplyRequestFactory {
	return &SupplyRequestFactory{}
}

// Create creates a draft supply request
func (f *SupplyRequestFactory) Create(vesselID, requestedBy uuid.UUID) *models.SupplyRequest {
	return &models.SupplyRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VesselID:    vesselID,
		RequestedBy: requestedBy,
		Title:       "Fresh provisions for next leg",
		Category:    models.SupplyCategoryProvisions,
		Status:      models.SupplyStatusDraft,
		Quantity:    250,
		Unit:        "kg",
	}
}

// WithStatus creates a supply request in the given lifecycle state
func (f *SupplyRequestFactory) WithStatus(vesselID, requestedBy uuid.UUID, status models.SupplyStatus) *models.SupplyRequest {
	req := f.Create(vesselID, requestedBy)
	req.Status = status
	return req
}

// WaybillFactory provides methods to create test Waybill data
type WaybillFactory struct{}

// NewWaybillFactory creates a new WaybillFactory
func NewWaybillFactory() *WaybillFactory {
	return &WaybillFactory{}
}

// Create creates an issued waybill for the given supply request
func (f *WaybillFactory) Create(requestID uuid.UUID) *models.Waybill {
	id := uuid.New()
	return &models.Waybill{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SupplyRequestID: requestID,
		Number:          fmt.Sprintf("WB-%s", id.String()[:8]),
		Carrier:         "Nordic Marine Logistics",
		OriginPort:      "Rotterdam",
		DestinationPort: "Singapore",
		Status:          models.WaybillStatusIssued,
		IssuedAt:        time.Now(),
	}
}

// FactorySet bundles all factories for tests that touch several tables
type FactorySet struct {
	User          *UserFactory
	Organization  *OrganizationFactory
	Member        *MemberFactory
	Vessel        *VesselFactory
	UserVessel    *UserVesselFactory
	Invitation    *InvitationFactory
	Subscription  *SubscriptionFactory
	SupplyRequest *SupplyRequestFactory
	Waybill       *WaybillFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Organization:  NewOrganizationFactory(),
		Member:        NewMemberFactory(),
		Vessel:        NewVesselFactory(),
		UserVessel:    NewUserVesselFactory(),
		Invitation:    NewInvitationFactory(),
		Subscription:  NewSubscriptionFactory(),
		SupplyRequest: NewSupplyRequestFactory(),
		Waybill:       NewWaybillFactory(),
	}
}
