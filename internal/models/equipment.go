package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Equipment is a major appliance/device (MADE) attached to a building.
// MonthlyKWh is derived (power × hours × 30) and recomputed by the service on
// every write; the stored value is never treated as authoritative input.
type Equipment struct {
	EquipmentID   uuid.UUID `gorm:"column:equipment_id;type:uuid;primaryKey" json:"equipment_id"`
	FSBDID        uuid.UUID `gorm:"column:fsbd_id;type:uuid;not null;index" json:"fsbd_id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	PowerRatingKW float64   `gorm:"column:power_rating_kw;not null;default:0" json:"power_rating_kw"`
	HoursPerDay   float64   `gorm:"column:hours_per_day;not null;default:0" json:"hours_per_day"`
	MonthlyKWh    float64   `gorm:"column:monthly_kwh;not null;default:0" json:"monthly_kwh"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Equipment) TableName() string {
	return "Equipment"
}

func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	if e.EquipmentID == uuid.Nil {
		e.EquipmentID = uuid.New()
	}
	return nil
}
