package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationMemberRepository handles database operations for organization memberships
type OrganizationMemberRepository struct {
	db *gorm.DB
}

// NewOrganizationMemberRepository creates a new membership repository
func NewOrganizationMemberRepository(db *gorm.DB) *OrganizationMemberRepository {
	return &OrganizationMemberRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *OrganizationMemberRepository) WithTx(tx *gorm.DB) OrganizationMemberRepositoryInterface {
	return &OrganizationMemberRepository{db: tx}
}

// Create creates a new membership row
func (r *OrganizationMemberRepository) Create(member *models.OrganizationMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *OrganizationMemberRepository) GetByID(id uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByUserAndOrg retrieves the membership for a (user, organization) pair
func (r *OrganizationMemberRepository) GetByUserAndOrg(userID, orgID uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.First(&member, "user_id = ? AND organization_id = ?", userID, orgID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByOrganization retrieves memberships for an organization with pagination
func (r *OrganizationMemberRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMember, int64, error) {
	var members []models.OrganizationMember
	var total int64

	if err := r.db.Model(&models.OrganizationMember{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// CountActiveByOrganization counts active memberships for an organization
func (r *OrganizationMemberRepository) CountActiveByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND status = ?", orgID, models.MemberStatusActive).
		Count(&count).Error
	return count, err
}

// Update updates a membership row
func (r *OrganizationMemberRepository) Update(member *models.OrganizationMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a membership by ID
func (r *OrganizationMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OrganizationMember{}, "id = ?", id).Error
}

// DeleteByUserAndOrg deletes the membership for a (user, organization) pair
func (r *OrganizationMemberRepository) DeleteByUserAndOrg(userID, orgID uuid.UUID) error {
	return r.db.Delete(&models.OrganizationMember{}, "user_id = ? AND organization_id = ?", userID, orgID).Error
}
