package models

import (
	"time"

	"github.com/google/uuid"
)

// InvitationCodeLength is the fixed length of invitation codes, matching the
// one-time-code input in the consuming UI.
const InvitationCodeLength = 6

// Invitation is a single-use code granting a specific membership upon
// redemption. It can carry an organization scope, a vessel scope, or both.
type Invitation struct {
	BaseModel
	Code           string           `json:"code" gorm:"uniqueIndex;not null;size:10" validate:"required,len=6"`
	Email          string           `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	OrganizationID *uuid.UUID       `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	VesselID       *uuid.UUID       `json:"vessel_id,omitempty" gorm:"type:uuid;index"`
	OrgRole        OrgRole          `json:"org_role" gorm:"type:varchar(50);not null;default:'member'"`
	VesselRole     VesselRole       `json:"vessel_role" gorm:"type:varchar(50);not null;default:'crew'"`
	InvitedBy      uuid.UUID        `json:"invited_by" gorm:"type:uuid;not null" validate:"required"`
	Status         InvitationStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending';index"`
	ExpiresAt      time.Time        `json:"expires_at" gorm:"not null"`
	ConsumedBy     *uuid.UUID       `json:"consumed_by,omitempty" gorm:"type:uuid"`
	ConsumedAt     *time.Time       `json:"consumed_at,omitempty"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Vessel       *Vessel       `json:"vessel,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
	Inviter      *User         `json:"inviter,omitempty" gorm:"foreignKey:InvitedBy"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsExpired reports whether the invitation is past its validity window
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
