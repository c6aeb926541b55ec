package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManager runs a function inside a single database transaction. Services
// use it together with the repositories' WithTx so that multi-entity
// mutations commit or roll back as one unit.
type TxManager interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	WithTx(tx *gorm.DB) UserRepositoryInterface
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	WithTx(tx *gorm.DB) OrganizationRepositoryInterface
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	// GetByIDForUpdate locks the organization row for the duration of the
	// surrounding transaction, serializing capacity checks against
	// concurrent provisioners.
	GetByIDForUpdate(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	// ListForUser returns organizations the user owns or holds an active
	// admin/manager membership in.
	ListForUser(userID uuid.UUID) ([]models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	GetWithMembers(id uuid.UUID) (*models.Organization, error)
	GetWithVessels(id uuid.UUID) (*models.Organization, error)
}

// OrganizationMemberRepositoryInterface defines the interface for membership repository operations
type OrganizationMemberRepositoryInterface interface {
	WithTx(tx *gorm.DB) OrganizationMemberRepositoryInterface
	Create(member *models.OrganizationMember) error
	GetByID(id uuid.UUID) (*models.OrganizationMember, error)
	GetByUserAndOrg(userID, orgID uuid.UUID) (*models.OrganizationMember, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMember, int64, error)
	CountActiveByOrganization(orgID uuid.UUID) (int64, error)
	Update(member *models.OrganizationMember) error
	Delete(id uuid.UUID) error
	DeleteByUserAndOrg(userID, orgID uuid.UUID) error
}

// VesselRepositoryInterface defines the interface for vessel repository operations
type VesselRepositoryInterface interface {
	WithTx(tx *gorm.DB) VesselRepositoryInterface
	Create(vessel *models.Vessel) error
	GetByID(id uuid.UUID) (*models.Vessel, error)
	GetByName(orgID uuid.UUID, name string) (*models.Vessel, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Vessel, int64, error)
	// ListForUser returns vessels the user holds an active UserVessel on.
	ListForUser(userID uuid.UUID) ([]models.Vessel, error)
	Update(vessel *models.Vessel) error
	Delete(id uuid.UUID) error
}

// UserVesselRepositoryInterface defines the interface for vessel access repository operations
type UserVesselRepositoryInterface interface {
	WithTx(tx *gorm.DB) UserVesselRepositoryInterface
	Create(uv *models.UserVessel) error
	GetByID(id uuid.UUID) (*models.UserVessel, error)
	GetByUserAndVessel(userID, vesselID uuid.UUID) (*models.UserVessel, error)
	ListByVessel(vesselID uuid.UUID, limit, offset int) ([]models.UserVessel, int64, error)
	ListByUser(userID uuid.UUID) ([]models.UserVessel, error)
	Update(uv *models.UserVessel) error
	Delete(id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	WithTx(tx *gorm.DB) InvitationRepositoryInterface
	Create(invitation *models.Invitation) error
	GetByID(id uuid.UUID) (*models.Invitation, error)
	GetByCode(code string) (*models.Invitation, error)
	// GetByCodeForUpdate locks the invitation row for the duration of the
	// surrounding transaction so that concurrent redemptions of the same
	// code serialize and exactly one observes it pending.
	GetByCodeForUpdate(code string) (*models.Invitation, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error)
	Update(invitation *models.Invitation) error
	Delete(id uuid.UUID) error
}

// SubscriptionRepositoryInterface defines the read-side interface for subscriptions
type SubscriptionRepositoryInterface interface {
	WithTx(tx *gorm.DB) SubscriptionRepositoryInterface
	Create(sub *models.Subscription) error
	GetActiveByOrganization(orgID uuid.UUID) (*models.Subscription, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Subscription, error)
}

// SupplyRequestRepositoryInterface defines the interface for supply request repository operations
type SupplyRequestRepositoryInterface interface {
	WithTx(tx *gorm.DB) SupplyRequestRepositoryInterface
	Create(req *models.SupplyRequest) error
	GetByID(id uuid.UUID) (*models.SupplyRequest, error)
	ListByVessel(vesselID uuid.UUID, limit, offset int) ([]models.SupplyRequest, int64, error)
	Update(req *models.SupplyRequest) error
	Delete(id uuid.UUID) error
}

// WaybillRepositoryInterface defines the interface for waybill repository operations
type WaybillRepositoryInterface interface {
	WithTx(tx *gorm.DB) WaybillRepositoryInterface
	Create(wb *models.Waybill) error
	GetByID(id uuid.UUID) (*models.Waybill, error)
	GetByNumber(number string) (*models.Waybill, error)
	ListBySupplyRequest(requestID uuid.UUID, limit, offset int) ([]models.Waybill, int64, error)
	Update(wb *models.Waybill) error
	Delete(id uuid.UUID) error
}
