package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvitationRepository handles database operations for invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *InvitationRepository) WithTx(tx *gorm.DB) InvitationRepositoryInterface {
	return &InvitationRepository{db: tx}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByCode retrieves an invitation by its code
func (r *InvitationRepository) GetByCode(code string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByCodeForUpdate retrieves an invitation by code with a row lock. Must
// be called inside a transaction; concurrent redeemers of the same code
// block here until the first transaction commits.
func (r *InvitationRepository) GetByCodeForUpdate(code string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&invitation, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListByOrganization retrieves invitations for an organization with pagination
func (r *InvitationRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error) {
	var invitations []models.Invitation
	var total int64

	if err := r.db.Model(&models.Invitation{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, 0, err
	}

	return invitations, total, nil
}

// Update updates an invitation
func (r *InvitationRepository) Update(invitation *models.Invitation) error {
	return r.db.Save(invitation).Error
}

// Delete deletes an invitation
func (r *InvitationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invitation{}, "id = ?", id).Error
}
