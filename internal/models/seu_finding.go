package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SEUFinding is a significant-energy-use finding against exactly one asset:
// either a building (fsbd_id) or a vehicle (vehicle_id). Storage keeps two
// nullable columns; code goes through reporting.AssetRef so the
// exactly-one-set rule lives in one place.
type SEUFinding struct {
	FindingID   uuid.UUID  `gorm:"column:finding_id;type:uuid;primaryKey" json:"finding_id"`
	FSBDID      *uuid.UUID `gorm:"column:fsbd_id;type:uuid;index" json:"fsbd_id"`
	VehicleID   *uuid.UUID `gorm:"column:vehicle_id;type:uuid;index" json:"vehicle_id"`
	Category    string     `gorm:"column:category;not null" json:"category"`
	Description string     `gorm:"column:description" json:"description"`
	Method      string     `gorm:"column:method" json:"method"`
	Status      string     `gorm:"column:status;not null;default:Open" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (SEUFinding) TableName() string {
	return "SEUFindings"
}

func (f *SEUFinding) BeforeCreate(tx *gorm.DB) error {
	if f.FindingID == uuid.Nil {
		f.FindingID = uuid.New()
	}
	return nil
}
