package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplyRequestRepository handles database operations for supply requests
type SupplyRequestRepository struct {
	db *gorm.DB
}

// NewSupplyRequestRepository creates a new supply request repository
func NewSupplyRequestRepository(db *gorm.DB) *SupplyRequestRepository {
	return &SupplyRequestRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *SupplyRequestRepository) WithTx(tx *gorm.DB) SupplyRequestRepositoryInterface {
	return &SupplyRequestRepository{db: tx}
}

// Create creates a new supply request
func (r *SupplyRequestRepository) Create(req *models.SupplyRequest) error {
	return r.db.Create(req).Error
}

// GetByID retrieves a supply request by ID
func (r *SupplyRequestRepository) GetByID(id uuid.UUID) (*models.SupplyRequest, error) {
	var req models.SupplyRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByVessel retrieves supply requests for a vessel with pagination
func (r *SupplyRequestRepository) ListByVessel(vesselID uuid.UUID, limit, offset int) ([]models.SupplyRequest, int64, error) {
	var reqs []models.SupplyRequest
	var total int64

	if err := r.db.Model(&models.SupplyRequest{}).Where("vessel_id = ?", vesselID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("vessel_id = ?", vesselID).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

// Update updates a supply request
func (r *SupplyRequestRepository) Update(req *models.SupplyRequest) error {
	return r.db.Save(req).Error
}

// Delete deletes a supply request
func (r *SupplyRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SupplyRequest{}, "id = ?", id).Error
}
