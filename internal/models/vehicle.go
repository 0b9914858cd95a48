package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is a fleet asset record. A nil lgu_id marks a shared-fleet vehicle
// visible under every tenant.
type Vehicle struct {
	VehicleID   uuid.UUID  `gorm:"column:vehicle_id;type:uuid;primaryKey" json:"vehicle_id"`
	LGUID       *uuid.UUID `gorm:"column:lgu_id;type:uuid;index" json:"lgu_id"`
	PlateNumber string     `gorm:"column:plate_number;not null;uniqueIndex" json:"plate_number"`
	Make        string     `gorm:"column:make" json:"make"`
	Model       string     `gorm:"column:model" json:"model"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Vehicle) TableName() string {
	return "Vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.VehicleID == uuid.Nil {
		v.VehicleID = uuid.New()
	}
	return nil
}

// TenantID returns the owning LGU, nil for shared-fleet vehicles.
func (v Vehicle) TenantID() *uuid.UUID {
	return v.LGUID
}
