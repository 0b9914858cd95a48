package recommendations

import (
	"context"
	"errors"

	"emis-backend/internal/models"
	"emis-backend/internal/pkg/validation"
	"emis-backend/internal/reporting"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("Recommendation title is required")
	ErrInvalidPriority = errors.New("Priority must be one of Low, Medium, High")
	ErrInvalidStatus   = errors.New("Status must be one of Identified, Planned, In Progress, Completed")
	ErrNotFound        = errors.New("Recommendation not found")
)

// Service encapsulates recommendation (RIO) operations.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new recommendation. Exactly one of FSBDID/VehicleID must
// be set.
type CreateInput struct {
	FSBDID                 *uuid.UUID `json:"fsbd_id"`
	VehicleID              *uuid.UUID `json:"vehicle_id"`
	Title                  string     `json:"title"`
	SEUFindingIDs          []string   `json:"seu_finding_ids"`
	Priority               string     `json:"priority"`
	Status                 string     `json:"status"`
	EstimatedCost          float64    `json:"estimated_cost"`
	EstimatedAnnualSavings float64    `json:"estimated_annual_savings"`
}

// UpdateInput is a partial update; the asset reference is immutable.
type UpdateInput struct {
	Title                  *string   `json:"title"`
	SEUFindingIDs          *[]string `json:"seu_finding_ids"`
	Priority               *string   `json:"priority"`
	Status                 *string   `json:"status"`
	EstimatedCost          *float64  `json:"estimated_cost"`
	EstimatedAnnualSavings *float64  `json:"estimated_annual_savings"`
}

func validPriority(p string) bool {
	return validation.OneOf(p, models.PriorityLow, models.PriorityMedium, models.PriorityHigh)
}

func validStatus(st string) bool {
	return validation.OneOf(st, models.RIOStatusIdentified, models.RIOStatusPlanned, models.RIOStatusInProgress, models.RIOStatusCompleted)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Recommendation, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if _, err := reporting.NewAssetRef(input.FSBDID, input.VehicleID); err != nil {
		return nil, err
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityLow
	}
	if !validPriority(priority) {
		return nil, ErrInvalidPriority
	}
	status := input.Status
	if status == "" {
		status = models.RIOStatusIdentified
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	r := models.Recommendation{
		FSBDID:                 input.FSBDID,
		VehicleID:              input.VehicleID,
		Title:                  input.Title,
		SEUFindingIDs:          datatypes.NewJSONSlice(input.SEUFindingIDs),
		Priority:               priority,
		Status:                 status,
		EstimatedCost:          input.EstimatedCost,
		EstimatedAnnualSavings: input.EstimatedAnnualSavings,
	}
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Service) List(ctx context.Context) ([]models.Recommendation, error) {
	var items []models.Recommendation
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Recommendation, error) {
	var r models.Recommendation
	if err := s.DB.WithContext(ctx).Where("rio_id = ?", id).First(&r).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Recommendation, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = *input.Title
	}
	if input.Priority != nil {
		if !validPriority(*input.Priority) {
			return nil, ErrInvalidPriority
		}
		updates["priority"] = *input.Priority
	}
	if input.Status != nil {
		if !validStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *input.Status
	}
	if input.SEUFindingIDs != nil {
		updates["seu_finding_ids"] = datatypes.NewJSONSlice(*input.SEUFindingIDs)
	}
	if input.EstimatedCost != nil {
		updates["estimated_cost"] = *input.EstimatedCost
	}
	if input.EstimatedAnnualSavings != nil {
		updates["estimated_annual_savings"] = *input.EstimatedAnnualSavings
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(r).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("rio_id = ?", id).Delete(&models.Recommendation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
