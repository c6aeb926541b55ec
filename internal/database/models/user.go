package models

import (
	"encoding/json"
)

// User represents a global identity, independent of any organization
type User struct {
	BaseModel
	Email     string          `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName string          `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName  string          `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	UserType  UserType        `json:"user_type" gorm:"type:varchar(50);not null;default:'regular'" validate:"required"`
	Metadata  json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Memberships []OrganizationMember `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	VesselRoles []UserVessel         `json:"vessel_roles,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
