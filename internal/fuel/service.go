package fuel

import (
	"context"
	"errors"

	"emis-backend/internal/models"
	"emis-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVehicleRequired = errors.New("Vehicle (vehicle_id) is required")
	ErrInvalidPeriod   = errors.New("Reporting period is invalid")
	ErrDuplicatePeriod = errors.New("A report for this vehicle and period already exists")
	ErrNotFound        = errors.New("Fuel report not found")
)

// Service encapsulates monthly fuel report (MFCR) operations. Same write
// rules as the electricity side: append-mostly, duplicate period rejected
// before insert, corrections are delete-then-recreate.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new monthly report.
type CreateInput struct {
	VehicleID      uuid.UUID `json:"vehicle_id"`
	ReportingYear  int       `json:"reporting_year"`
	ReportingMonth int       `json:"reporting_month"`
	Liters         float64   `json:"liters"`
	DistanceKM     float64   `json:"distance_km"`
	Cost           float64   `json:"cost"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.FuelReport, error) {
	if input.VehicleID == uuid.Nil {
		return nil, ErrVehicleRequired
	}
	if !validation.IsValidReportingPeriod(input.ReportingYear, input.ReportingMonth) {
		return nil, ErrInvalidPeriod
	}

	var count int64
	err := s.DB.WithContext(ctx).Model(&models.FuelReport{}).
		Where("vehicle_id = ? AND reporting_year = ? AND reporting_month = ?",
			input.VehicleID, input.ReportingYear, input.ReportingMonth).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicatePeriod
	}

	r := models.FuelReport{
		VehicleID:      input.VehicleID,
		ReportingYear:  input.ReportingYear,
		ReportingMonth: input.ReportingMonth,
		Liters:         input.Liters,
		DistanceKM:     input.DistanceKM,
		Cost:           input.Cost,
	}
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByVehicle returns a vehicle's reports, oldest period first.
func (s *Service) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]models.FuelReport, error) {
	var items []models.FuelReport
	if err := s.DB.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("reporting_year asc, reporting_month asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("report_id = ?", id).Delete(&models.FuelReport{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
