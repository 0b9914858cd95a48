package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LGU is a local government unit, the tenant most records are scoped by.
type LGU struct {
	LGUID     uuid.UUID `gorm:"column:lgu_id;type:uuid;primaryKey" json:"lgu_id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Region    string    `gorm:"column:region;not null" json:"region"`
	Province  string    `gorm:"column:province;not null" json:"province"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (LGU) TableName() string {
	return "LGUs"
}

// BeforeCreate sets lgu_id for DBs without default uuid.
func (l *LGU) BeforeCreate(tx *gorm.DB) error {
	if l.LGUID == uuid.Nil {
		l.LGUID = uuid.New()
	}
	return nil
}
