package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Building is a facility asset record (FSBD). A nil lgu_id marks a
// shared/global building visible under every tenant.
type Building struct {
	FSBDID       uuid.UUID  `gorm:"column:fsbd_id;type:uuid;primaryKey" json:"fsbd_id"`
	LGUID        *uuid.UUID `gorm:"column:lgu_id;type:uuid;index" json:"lgu_id"`
	Name         string     `gorm:"column:name;not null" json:"name"`
	BuildingType string     `gorm:"column:building_type;not null" json:"building_type"`
	FloorAreaSqm float64    `gorm:"column:floor_area_sqm;not null;default:0" json:"floor_area_sqm"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Building) TableName() string {
	return "Buildings"
}

func (b *Building) BeforeCreate(tx *gorm.DB) error {
	if b.FSBDID == uuid.Nil {
		b.FSBDID = uuid.New()
	}
	return nil
}

// TenantID returns the owning LGU, nil for shared assets.
func (b Building) TenantID() *uuid.UUID {
	return b.LGUID
}
