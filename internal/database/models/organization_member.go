package models

import (
	"github.com/google/uuid"
)

// OrganizationMember joins a User to an Organization with an org-scoped role.
// A user has at most one membership row per organization.
type OrganizationMember struct {
	BaseModel
	UserID         uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_user_org" validate:"required"`
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_user_org;index" validate:"required"`
	Role           OrgRole      `json:"role" gorm:"type:varchar(50);not null;default:'member'" validate:"required"`
	Status         MemberStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'"`

	// Relationships
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationMember
func (OrganizationMember) TableName() string {
	return "organization_members"
}
