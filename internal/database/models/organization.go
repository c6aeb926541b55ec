package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Organization represents the root entity for multi-tenancy.
// The owner has implicit full privilege regardless of membership rows.
type Organization struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string          `json:"description" gorm:"type:text"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Owner         *User                `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members       []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Vessels       []Vessel             `json:"vessels,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Subscriptions []Subscription       `json:"subscriptions,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
