package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *OrganizationRepository) WithTx(tx *gorm.DB) OrganizationRepositoryInterface {
	return &OrganizationRepository{db: tx}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByIDForUpdate retrieves an organization by ID with a row lock. Must be
// called inside a transaction; the lock is held until commit or rollback.
func (r *OrganizationRepository) GetByIDForUpdate(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName retrieves an organization by name
func (r *OrganizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll retrieves all organizations with pagination
func (r *OrganizationRepository) GetAll(limit, offset int) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var total int64

	if err := r.db.Model(&models.Organization{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at ASC").Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// ListForUser retrieves organizations the user owns or holds an active
// admin/manager membership in
func (r *OrganizationRepository) ListForUser(userID uuid.UUID) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.
		Distinct("organizations.*").
		Joins("LEFT JOIN organization_members ON organization_members.organization_id = organizations.id").
		Where("organizations.owner_id = ?", userID).
		Or("organization_members.user_id = ? AND organization_members.status = ? AND organization_members.role IN ?",
			userID, models.MemberStatusActive, []models.OrgRole{models.OrgRoleAdmin, models.OrgRoleManager}).
		Order("organizations.created_at ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}

// GetWithMembers retrieves an organization with its membership rows
func (r *OrganizationRepository) GetWithMembers(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Preload("Members").Preload("Members.User").First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetWithVessels retrieves an organization with its vessels
func (r *OrganizationRepository) GetWithVessels(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Preload("Vessels").First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}
