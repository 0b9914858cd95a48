package findings

import (
	"context"
	"errors"

	"emis-backend/internal/models"
	"emis-backend/internal/reporting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryRequired = errors.New("Finding category is required")
	ErrNotFound         = errors.New("SEU finding not found")
)

// Service encapsulates SEU finding operations.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new finding. Exactly one of FSBDID/VehicleID must be set.
type CreateInput struct {
	FSBDID      *uuid.UUID `json:"fsbd_id"`
	VehicleID   *uuid.UUID `json:"vehicle_id"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
}

// UpdateInput is a partial update. The asset reference is immutable after
// creation; move a finding by deleting and re-filing it.
type UpdateInput struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Method      *string `json:"method"`
	Status      *string `json:"status"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.SEUFinding, error) {
	if input.Category == "" {
		return nil, ErrCategoryRequired
	}
	// The one-asset rule is checked here, once, through the sum type.
	if _, err := reporting.NewAssetRef(input.FSBDID, input.VehicleID); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = "Open"
	}
	f := models.SEUFinding{
		FSBDID:      input.FSBDID,
		VehicleID:   input.VehicleID,
		Category:    input.Category,
		Description: input.Description,
		Method:      input.Method,
		Status:      status,
	}
	if err := s.DB.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Service) List(ctx context.Context) ([]models.SEUFinding, error) {
	var items []models.SEUFinding
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.SEUFinding, error) {
	var f models.SEUFinding
	if err := s.DB.WithContext(ctx).Where("finding_id = ?", id).First(&f).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.SEUFinding, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, ErrCategoryRequired
		}
		updates["category"] = *input.Category
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Method != nil {
		updates["method"] = *input.Method
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(f).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("finding_id = ?", id).Delete(&models.SEUFinding{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
