package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SupplyRequest represents a vessel's request for provisions or spares
type SupplyRequest struct {
	BaseModel
	VesselID    uuid.UUID       `json:"vessel_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequestedBy uuid.UUID       `json:"requested_by" gorm:"type:uuid;not null" validate:"required"`
	Title       string          `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Category    SupplyCategory  `json:"category" gorm:"type:varchar(50);not null;default:'other'" validate:"required"`
	Status      SupplyStatus    `json:"status" gorm:"type:varchar(50);not null;default:'draft';index"`
	Quantity    float64         `json:"quantity" gorm:"not null;default:0"`
	Unit        string          `json:"unit" gorm:"size:50"`
	Notes       string          `json:"notes" gorm:"type:text"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Vessel    *Vessel   `json:"vessel,omitempty" gorm:"foreignKey:VesselID;constraint:OnDelete:CASCADE"`
	Requester *User     `json:"requester,omitempty" gorm:"foreignKey:RequestedBy"`
	Waybills  []Waybill `json:"waybills,omitempty" gorm:"foreignKey:SupplyRequestID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SupplyRequest
func (SupplyRequest) TableName() string {
	return "supply_requests"
}

// CanTransitionTo reports whether the status change is a legal lifecycle step
func (s SupplyStatus) CanTransitionTo(next SupplyStatus) bool {
	switch s {
	case SupplyStatusDraft:
		return next == SupplyStatusSubmitted || next == SupplyStatusCancelled
	case SupplyStatusSubmitted:
		return next == SupplyStatusApproved || next == SupplyStatusCancelled
	case SupplyStatusApproved:
		return next == SupplyStatusOrdered || next == SupplyStatusCancelled
	case SupplyStatusOrdered:
		return next == SupplyStatusDelivered || next == SupplyStatusCancelled
	}
	return false
}
