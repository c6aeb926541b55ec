package models

import (
	"time"

	"github.com/google/uuid"
)

// Waybill is the shipping document for an ordered supply request
type Waybill struct {
	BaseModel
	SupplyRequestID uuid.UUID     `json:"supply_request_id" gorm:"type:uuid;not null;index" validate:"required"`
	Number          string        `json:"number" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Carrier         string        `json:"carrier" gorm:"size:100"`
	OriginPort      string        `json:"origin_port" gorm:"size:100"`
	DestinationPort string        `json:"destination_port" gorm:"size:100"`
	Status          WaybillStatus `json:"status" gorm:"type:varchar(50);not null;default:'issued';index"`
	IssuedAt        time.Time     `json:"issued_at"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty"`

	// Relationships
	SupplyRequest *SupplyRequest `json:"supply_request,omitempty" gorm:"foreignKey:SupplyRequestID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Waybill
func (Waybill) TableName() string {
	return "waybills"
}
