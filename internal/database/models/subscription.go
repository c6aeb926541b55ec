package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription carries the billing plan limits for an organization. At most
// one active subscription exists per organization. This service only reads
// subscriptions; the billing provider writes them.
type Subscription struct {
	BaseModel
	OrganizationID   uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	PlanName         string             `json:"plan_name" gorm:"not null;size:100" validate:"required,max=100"`
	Status           SubscriptionStatus `json:"status" gorm:"type:varchar(50);not null;default:'active';index"`
	MaxVessels       int                `json:"max_vessels" gorm:"not null;default:0"` // 0 means unlimited
	MaxUsers         int                `json:"max_users" gorm:"not null;default:0"`   // 0 means unlimited
	CurrentPeriodEnd time.Time          `json:"current_period_end"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}
