package service

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MembershipResolverInterface computes a caller's standing within an
// organization or on a vessel. Resolution is never cached; every call reads
// current rows so that revocations take effect immediately.
type MembershipResolverInterface interface {
	// WithTx returns a resolver bound to the given transaction, so that
	// privilege checks inside a unit of work see its row locks.
	WithTx(tx *gorm.DB) MembershipResolverInterface
	Resolve(userID, organizationID uuid.UUID) (*Membership, error)
	ResolveVessel(userID, vesselID uuid.UUID) (*VesselAccess, error)
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetByEmail(email string) (*UserResponse, error)
	GetAll(page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// OrganizationServiceInterface defines the interface for organization service operations
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// MemberServiceInterface defines the interface for membership service operations
type MemberServiceInterface interface {
	Add(orgID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error)
	ListByOrganization(orgID uuid.UUID, page, pageSize int) (*MemberListResponse, error)
	UpdateRole(orgID, userID uuid.UUID, req *UpdateMemberRoleRequest) (*MemberResponse, error)
	SetStatus(orgID, userID uuid.UUID, status models.MemberStatus) (*MemberResponse, error)
	Remove(orgID, userID uuid.UUID) error
}

// InvitationServiceInterface defines the interface for invitation service operations
type InvitationServiceInterface interface {
	Issue(req *IssueInvitationRequest) (*InvitationResponse, error)
	Redeem(code string, userID uuid.UUID) (*RedeemInvitationResponse, error)
	ListByOrganization(orgID uuid.UUID, page, pageSize int) (*InvitationListResponse, error)
	Revoke(orgID, id uuid.UUID) error
	GetByID(id uuid.UUID) (*InvitationResponse, error)
}

// VesselServiceInterface defines the interface for vessel service operations
type VesselServiceInterface interface {
	Create(userID, organizationID uuid.UUID, req *CreateVesselRequest) (*VesselResponse, error)
	GetByID(id uuid.UUID) (*VesselResponse, error)
	ListByOrganization(orgID uuid.UUID, page, pageSize int) (*VesselListResponse, error)
	ListForUser(userID uuid.UUID) ([]VesselResponse, error)
	Update(id uuid.UUID, req *UpdateVesselRequest) (*VesselResponse, error)
	Delete(id uuid.UUID) error
}

// SubscriptionServiceInterface defines the interface for subscription service operations
type SubscriptionServiceInterface interface {
	GetActiveForOrganization(orgID uuid.UUID) (*SubscriptionResponse, error)
}

// SupplyRequestServiceInterface defines the interface for supply request service operations
type SupplyRequestServiceInterface interface {
	Create(userID, vesselID uuid.UUID, req *CreateSupplyRequestRequest) (*SupplyRequestResponse, error)
	GetByID(id uuid.UUID) (*SupplyRequestResponse, error)
	ListByVessel(vesselID uuid.UUID, page, pageSize int) (*SupplyRequestListResponse, error)
	Update(id uuid.UUID, req *UpdateSupplyRequestRequest) (*SupplyRequestResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateSupplyStatusRequest) (*SupplyRequestResponse, error)
	Delete(id uuid.UUID) error
}

// WaybillServiceInterface defines the interface for waybill service operations
type WaybillServiceInterface interface {
	Create(requestID uuid.UUID, req *CreateWaybillRequest) (*WaybillResponse, error)
	GetByID(id uuid.UUID) (*WaybillResponse, error)
	ListBySupplyRequest(requestID uuid.UUID, page, pageSize int) (*WaybillListResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateWaybillStatusRequest) (*WaybillResponse, error)
}
