package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recommendation priority values.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Recommendation status values.
const (
	RIOStatusIdentified = "Identified"
	RIOStatusPlanned    = "Planned"
	RIOStatusInProgress = "In Progress"
	RIOStatusCompleted  = "Completed"
)

// Recommendation is a recommended improvement opportunity (RIO) against one
// asset, linked to zero or more SEU findings.
type Recommendation struct {
	RIOID                  uuid.UUID                    `gorm:"column:rio_id;type:uuid;primaryKey" json:"rio_id"`
	FSBDID                 *uuid.UUID                   `gorm:"column:fsbd_id;type:uuid;index" json:"fsbd_id"`
	VehicleID              *uuid.UUID                   `gorm:"column:vehicle_id;type:uuid;index" json:"vehicle_id"`
	Title                  string                       `gorm:"column:title;not null" json:"title"`
	SEUFindingIDs          datatypes.JSONSlice[string]  `gorm:"column:seu_finding_ids" json:"seu_finding_ids"`
	Priority               string                       `gorm:"column:priority;not null;default:Low" json:"priority"`
	Status                 string                       `gorm:"column:status;not null;default:Identified" json:"status"`
	EstimatedCost          float64                      `gorm:"column:estimated_cost;not null;default:0" json:"estimated_cost"`
	EstimatedAnnualSavings float64                      `gorm:"column:estimated_annual_savings;not null;default:0" json:"estimated_annual_savings"`
	CreatedAt              time.Time                    `json:"createdAt"`
	UpdatedAt              time.Time                    `json:"updatedAt"`
}

func (Recommendation) TableName() string {
	return "Recommendations"
}

func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.RIOID == uuid.Nil {
		r.RIOID = uuid.New()
	}
	return nil
}
