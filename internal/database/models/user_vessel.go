package models

import (
	"github.com/google/uuid"
)

// UserVessel joins a User to a Vessel with a vessel-scoped role. This is
// independent from OrganizationMember: a user can be an organization-level
// member and still manage a vessel, or the other way around.
type UserVessel struct {
	BaseModel
	UserID       uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_vessels_user_vessel" validate:"required"`
	VesselID     uuid.UUID    `json:"vessel_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_vessels_user_vessel;index" validate:"required"`
	Role         VesselRole   `json:"role" gorm:"type:varchar(50);not null;default:'crew'" validate:"required"`
	AccessStatus AccessStatus `json:"access_status" gorm:"type:varchar(50);not null;default:'active'"`

	// Relationships
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Vessel *Vessel `json:"vessel,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserVessel
func (UserVessel) TableName() string {
	return "user_vessels"
}
