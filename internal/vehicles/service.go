package vehicles

import (
	"context"
	"errors"

	"emis-backend/internal/models"
	"emis-backend/internal/reporting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPlateRequired = errors.New("Plate number is required")
	ErrNotFound      = errors.New("Vehicle not found")
)

// Service encapsulates vehicle operations.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new vehicle. A nil LGUID creates a shared-fleet vehicle.
type CreateInput struct {
	LGUID       *uuid.UUID `json:"lgu_id"`
	PlateNumber string     `json:"plate_number"`
	Make        string     `json:"make"`
	Model       string     `json:"model"`
}

// UpdateInput is a partial update; nil fields are left untouched. ClearLGU
// releases the vehicle back to the shared fleet and wins over LGUID, since a
// JSON null on lgu_id cannot be told apart from the field being absent.
type UpdateInput struct {
	LGUID       *uuid.UUID `json:"lgu_id"`
	ClearLGU    bool       `json:"clear_lgu"`
	PlateNumber *string    `json:"plate_number"`
	Make        *string    `json:"make"`
	Model       *string    `json:"model"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Vehicle, error) {
	if input.PlateNumber == "" {
		return nil, ErrPlateRequired
	}
	v := models.Vehicle{
		LGUID:       input.LGUID,
		PlateNumber: input.PlateNumber,
		Make:        input.Make,
		Model:       input.Model,
	}
	if err := s.DB.WithContext(ctx).Create(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns vehicles visible under the tenant (owned + shared fleet).
func (s *Service) List(ctx context.Context, tenantID string) ([]models.Vehicle, error) {
	var all []models.Vehicle
	if err := s.DB.WithContext(ctx).Order("plate_number asc").Find(&all).Error; err != nil {
		return nil, err
	}
	return reporting.FilterByTenant(all, tenantID), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.DB.WithContext(ctx).Where("vehicle_id = ?", id).First(&v).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Vehicle, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.PlateNumber != nil {
		if *input.PlateNumber == "" {
			return nil, ErrPlateRequired
		}
		updates["plate_number"] = *input.PlateNumber
	}
	if input.Make != nil {
		updates["make"] = *input.Make
	}
	if input.Model != nil {
		updates["model"] = *input.Model
	}
	if input.ClearLGU {
		updates["lgu_id"] = nil
	} else if input.LGUID != nil {
		updates["lgu_id"] = *input.LGUID
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(v).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("vehicle_id = ?", id).Delete(&models.Vehicle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
