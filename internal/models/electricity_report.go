package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ElectricityReport is a monthly electricity consumption report (MECR) for a
// building. Uniqueness of (fsbd_id, reporting_year, reporting_month) is
// enforced by the service before insert, not by the store. Reports are never
// updated in place, only deleted and re-created.
type ElectricityReport struct {
	ReportID       uuid.UUID `gorm:"column:report_id;type:uuid;primaryKey" json:"report_id"`
	FSBDID         uuid.UUID `gorm:"column:fsbd_id;type:uuid;not null;index" json:"fsbd_id"`
	ReportingYear  int       `gorm:"column:reporting_year;not null" json:"reporting_year"`
	ReportingMonth int       `gorm:"column:reporting_month;not null" json:"reporting_month"`
	KWh            float64   `gorm:"column:kwh;not null;default:0" json:"kwh"`
	Cost           float64   `gorm:"column:cost;not null;default:0" json:"cost"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (ElectricityReport) TableName() string {
	return "ElectricityReports"
}

func (r *ElectricityReport) BeforeCreate(tx *gorm.DB) error {
	if r.ReportID == uuid.Nil {
		r.ReportID = uuid.New()
	}
	return nil
}
