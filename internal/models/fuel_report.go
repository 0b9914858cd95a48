package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FuelReport is a monthly fuel consumption report (MFCR) for a vehicle.
// Same write rules as ElectricityReport: duplicate period rejected before
// insert, no in-place update.
type FuelReport struct {
	ReportID       uuid.UUID `gorm:"column:report_id;type:uuid;primaryKey" json:"report_id"`
	VehicleID      uuid.UUID `gorm:"column:vehicle_id;type:uuid;not null;index" json:"vehicle_id"`
	ReportingYear  int       `gorm:"column:reporting_year;not null" json:"reporting_year"`
	ReportingMonth int       `gorm:"column:reporting_month;not null" json:"reporting_month"`
	Liters         float64   `gorm:"column:liters;not null;default:0" json:"liters"`
	DistanceKM     float64   `gorm:"column:distance_km;not null;default:0" json:"distance_km"`
	Cost           float64   `gorm:"column:cost;not null;default:0" json:"cost"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (FuelReport) TableName() string {
	return "FuelReports"
}

func (r *FuelReport) BeforeCreate(tx *gorm.DB) error {
	if r.ReportID == uuid.Nil {
		r.ReportID = uuid.New()
	}
	return nil
}
