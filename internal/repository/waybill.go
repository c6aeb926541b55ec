package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaybillRepository handles database operations for waybills
type WaybillRepository struct {
	db *gorm.DB
}

// NewWaybillRepository creates a new waybill repository
func NewWaybillRepository(db *gorm.DB) *WaybillRepository {
	return &WaybillRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *WaybillRepository) WithTx(tx *gorm.DB) WaybillRepositoryInterface {
	return &WaybillRepository{db: tx}
}

// Create creates a new waybill
func (r *WaybillRepository) Create(wb *models.Waybill) error {
	return r.db.Create(wb).Error
}

// GetByID retrieves a waybill by ID
func (r *WaybillRepository) GetByID(id uuid.UUID) (*models.Waybill, error) {
	var wb models.Waybill
	err := r.db.First(&wb, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &wb, nil
}

// GetByNumber retrieves a waybill by its document number
func (r *WaybillRepository) GetByNumber(number string) (*models.Waybill, error) {
	var wb models.Waybill
	err := r.db.First(&wb, "number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &wb, nil
}

// ListBySupplyRequest retrieves waybills for a supply request with pagination
func (r *WaybillRepository) ListBySupplyRequest(requestID uuid.UUID, limit, offset int) ([]models.Waybill, int64, error) {
	var wbs []models.Waybill
	var total int64

	if err := r.db.Model(&models.Waybill{}).Where("supply_request_id = ?", requestID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("supply_request_id = ?", requestID).
		Limit(limit).Offset(offset).
		Order("issued_at DESC").
		Find(&wbs).Error
	if err != nil {
		return nil, 0, err
	}

	return wbs, total, nil
}

// Update updates a waybill
func (r *WaybillRepository) Update(wb *models.Waybill) error {
	return r.db.Save(wb).Error
}

// Delete deletes a waybill
func (r *WaybillRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Waybill{}, "id = ?", id).Error
}
