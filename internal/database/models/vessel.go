package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Vessel represents an operational unit owned by exactly one organization.
// The name is unique within the owning organization, not globally; the
// composite unique index is the authoritative guard against duplicates.
type Vessel struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_vessels_org_name;index" validate:"required"`
	Name           string          `json:"name" gorm:"not null;size:100;uniqueIndex:idx_vessels_org_name" validate:"required,min=1,max=100"`
	IMONumber      string          `json:"imo_number" gorm:"size:20"`
	Flag           string          `json:"flag" gorm:"size:100"`
	Description    string          `json:"description" gorm:"type:text"`
	Metadata       json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Organization   *Organization   `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Crew           []UserVessel    `json:"crew,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
	SupplyRequests []SupplyRequest `json:"supply_requests,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Vessel
func (Vessel) TableName() string {
	return "vessels"
}
