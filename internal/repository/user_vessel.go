package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserVesselRepository handles database operations for vessel access rows
type UserVesselRepository struct {
	db *gorm.DB
}

// NewUserVesselRepository creates a new vessel access repository
func NewUserVesselRepository(db *gorm.DB) *UserVesselRepository {
	return &UserVesselRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *UserVesselRepository) WithTx(tx *gorm.DB) UserVesselRepositoryInterface {
	return &UserVesselRepository{db: tx}
}

// Create creates a new vessel access row
func (r *UserVesselRepository) Create(uv *models.UserVessel) error {
	return r.db.Create(uv).Error
}

// GetByID retrieves a vessel access row by ID
func (r *UserVesselRepository) GetByID(id uuid.UUID) (*models.UserVessel, error) {
	var uv models.UserVessel
	err := r.db.First(&uv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &uv, nil
}

// GetByUserAndVessel retrieves the access row for a (user, vessel) pair
func (r *UserVesselRepository) GetByUserAndVessel(userID, vesselID uuid.UUID) (*models.UserVessel, error) {
	var uv models.UserVessel
	err := r.db.First(&uv, "user_id = ? AND vessel_id = ?", userID, vesselID).Error
	if err != nil {
		return nil, err
	}
	return &uv, nil
}

// ListByVessel retrieves access rows for a vessel with pagination
func (r *UserVesselRepository) ListByVessel(vesselID uuid.UUID, limit, offset int) ([]models.UserVessel, int64, error) {
	var rows []models.UserVessel
	var total int64

	if err := r.db.Model(&models.UserVessel{}).Where("vessel_id = ?", vesselID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("vessel_id = ?", vesselID).
		Limit(limit).Offset(offset).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// ListByUser retrieves all access rows for a user
func (r *UserVesselRepository) ListByUser(userID uuid.UUID) ([]models.UserVessel, error) {
	var rows []models.UserVessel
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update updates a vessel access row
func (r *UserVesselRepository) Update(uv *models.UserVessel) error {
	return r.db.Save(uv).Error
}

// Delete deletes a vessel access row
func (r *UserVesselRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.UserVessel{}, "id = ?", id).Error
}
