package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VesselRepository handles database operations for vessels
type VesselRepository struct {
	db *gorm.DB
}

// NewVesselRepository creates a new vessel repository
func NewVesselRepository(db *gorm.DB) *VesselRepository {
	return &VesselRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *VesselRepository) WithTx(tx *gorm.DB) VesselRepositoryInterface {
	return &VesselRepository{db: tx}
}

// Create creates a new vessel
func (r *VesselRepository) Create(vessel *models.Vessel) error {
	return r.db.Create(vessel).Error
}

// GetByID retrieves a vessel by ID
func (r *VesselRepository) GetByID(id uuid.UUID) (*models.Vessel, error) {
	var vessel models.Vessel
	err := r.db.First(&vessel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

// GetByName retrieves a vessel by name within an organization
func (r *VesselRepository) GetByName(orgID uuid.UUID, name string) (*models.Vessel, error) {
	var vessel models.Vessel
	err := r.db.First(&vessel, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

// CountByOrganization counts vessels owned by an organization
func (r *VesselRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vessel{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// ListByOrganization retrieves vessels for an organization with pagination
func (r *VesselRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Vessel, int64, error) {
	var vessels []models.Vessel
	var total int64

	if err := r.db.Model(&models.Vessel{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).
		Order("name ASC").
		Find(&vessels).Error
	if err != nil {
		return nil, 0, err
	}

	return vessels, total, nil
}

// ListForUser retrieves vessels the user holds an active access row on
func (r *VesselRepository) ListForUser(userID uuid.UUID) ([]models.Vessel, error) {
	var vessels []models.Vessel
	err := r.db.
		Joins("JOIN user_vessels ON user_vessels.vessel_id = vessels.id").
		Where("user_vessels.user_id = ? AND user_vessels.access_status = ?", userID, models.AccessStatusActive).
		Order("vessels.name ASC").
		Find(&vessels).Error
	if err != nil {
		return nil, err
	}
	return vessels, nil
}

// Update updates a vessel
func (r *VesselRepository) Update(vessel *models.Vessel) error {
	return r.db.Save(vessel).Error
}

// Delete deletes a vessel
func (r *VesselRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Vessel{}, "id = ?", id).Error
}
