package electricity

import (
	"context"
	"errors"

	"emis-backend/internal/models"
	"emis-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBuildingRequired = errors.New("Building (fsbd_id) is required")
	ErrInvalidPeriod    = errors.New("Reporting period is invalid")
	ErrDuplicatePeriod  = errors.New("A report for this building and period already exists")
	ErrNotFound         = errors.New("Electricity report not found")
)

// Service encapsulates monthly electricity report (MECR) operations.
// Reports are append-mostly: create and delete only. Corrections are
// delete-then-recreate, never update-in-place.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new monthly report.
type CreateInput struct {
	FSBDID         uuid.UUID `json:"fsbd_id"`
	ReportingYear  int       `json:"reporting_year"`
	ReportingMonth int       `json:"reporting_month"`
	KWh            float64   `json:"kwh"`
	Cost           float64   `json:"cost"`
}

// Create validates the period and rejects a duplicate (building, year, month)
// before touching the store. The check-then-insert has no transactional
// guarantee against concurrent writers; that window is accepted.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.ElectricityReport, error) {
	if input.FSBDID == uuid.Nil {
		return nil, ErrBuildingRequired
	}
	if !validation.IsValidReportingPeriod(input.ReportingYear, input.ReportingMonth) {
		return nil, ErrInvalidPeriod
	}

	var count int64
	err := s.DB.WithContext(ctx).Model(&models.ElectricityReport{}).
		Where("fsbd_id = ? AND reporting_year = ? AND reporting_month = ?",
			input.FSBDID, input.ReportingYear, input.ReportingMonth).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicatePeriod
	}

	r := models.ElectricityReport{
		FSBDID:         input.FSBDID,
		ReportingYear:  input.ReportingYear,
		ReportingMonth: input.ReportingMonth,
		KWh:            input.KWh,
		Cost:           input.Cost,
	}
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByBuilding returns a building's reports, oldest period first.
func (s *Service) ListByBuilding(ctx context.Context, fsbdID uuid.UUID) ([]models.ElectricityReport, error) {
	var items []models.ElectricityReport
	if err := s.DB.WithContext(ctx).
		Where("fsbd_id = ?", fsbdID).
		Order("reporting_year asc, reporting_month asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("report_id = ?", id).Delete(&models.ElectricityReport{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
