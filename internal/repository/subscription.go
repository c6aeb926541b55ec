package repository

import (
	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionRepository handles database operations for subscriptions.
// The billing provider owns the write side; this service only needs the
// current active subscription and its limits.
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *SubscriptionRepository) WithTx(tx *gorm.DB) SubscriptionRepositoryInterface {
	return &SubscriptionRepository{db: tx}
}

// Create creates a subscription row (used by seeding and tests)
func (r *SubscriptionRepository) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

// GetActiveByOrganization retrieves the organization's active subscription
func (r *SubscriptionRepository) GetActiveByOrganization(orgID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.
		Where("organization_id = ? AND status = ?", orgID, models.SubscriptionStatusActive).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListByOrganization retrieves all subscriptions for an organization
func (r *SubscriptionRepository) ListByOrganization(orgID uuid.UUID) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
