package buildings

import (
	"context"
	"errors"

	"emis-backend/internal/models"
	"emis-backend/internal/reporting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNameRequired = errors.New("Building name is required")
	ErrNotFound     = errors.New("Building not found")
)

// Service encapsulates building (FSBD) operations.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new building. A nil LGUID creates a shared building.
type CreateInput struct {
	LGUID        *uuid.UUID `json:"lgu_id"`
	Name         string     `json:"name"`
	BuildingType string     `json:"building_type"`
	FloorAreaSqm float64    `json:"floor_area_sqm"`
}

// UpdateInput is a partial update; nil fields are left untouched. ClearLGU
// releases the building back to the shared pool and wins over LGUID, since a
// JSON null on lgu_id cannot be told apart from the field being absent.
type UpdateInput struct {
	LGUID        *uuid.UUID `json:"lgu_id"`
	ClearLGU     bool       `json:"clear_lgu"`
	Name         *string    `json:"name"`
	BuildingType *string    `json:"building_type"`
	FloorAreaSqm *float64   `json:"floor_area_sqm"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Building, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	b := models.Building{
		LGUID:        input.LGUID,
		Name:         input.Name,
		BuildingType: input.BuildingType,
		FloorAreaSqm: input.FloorAreaSqm,
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns buildings visible under the tenant: owned plus unassigned,
// everything for the system-wide view. The tenant rule is applied in memory
// by the shared filter so it behaves identically everywhere.
func (s *Service) List(ctx context.Context, tenantID string) ([]models.Building, error) {
	var all []models.Building
	if err := s.DB.WithContext(ctx).Order("name asc").Find(&all).Error; err != nil {
		return nil, err
	}
	return reporting.FilterByTenant(all, tenantID), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	var b models.Building
	if err := s.DB.WithContext(ctx).Where("fsbd_id = ?", id).First(&b).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Building, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		updates["name"] = *input.Name
	}
	if input.BuildingType != nil {
		updates["building_type"] = *input.BuildingType
	}
	if input.FloorAreaSqm != nil {
		updates["floor_area_sqm"] = *input.FloorAreaSqm
	}
	if input.ClearLGU {
		updates["lgu_id"] = nil
	} else if input.LGUID != nil {
		updates["lgu_id"] = *input.LGUID
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(b).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("fsbd_id = ?", id).Delete(&models.Building{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
