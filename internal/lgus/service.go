package lgus

import (
	"context"
	"errors"

	"emis-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNameRequired = errors.New("LGU name is required")
	ErrNotFound     = errors.New("LGU not found")
)

// Service encapsulates LGU operations.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new LGU.
type CreateInput struct {
	Name     string `json:"name"`
	Region   string `json:"region"`
	Province string `json:"province"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name     *string `json:"name"`
	Region   *string `json:"region"`
	Province *string `json:"province"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.LGU, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	lgu := models.LGU{Name: input.Name, Region: input.Region, Province: input.Province}
	if err := s.DB.WithContext(ctx).Create(&lgu).Error; err != nil {
		return nil, err
	}
	return &lgu, nil
}

func (s *Service) List(ctx context.Context) ([]models.LGU, error) {
	var lgus []models.LGU
	if err := s.DB.WithContext(ctx).Order("name asc").Find(&lgus).Error; err != nil {
		return nil, err
	}
	return lgus, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.LGU, error) {
	var lgu models.LGU
	if err := s.DB.WithContext(ctx).Where("lgu_id = ?", id).First(&lgu).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lgu, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.LGU, error) {
	lgu, err := s.Get(ctx, id)
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
	if input.Region != nil {
		updates["region"] = *input.Region
	}
	if input.Province != nil {
		updates["province"] = *input.Province
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(lgu).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("lgu_id = ?", id).Delete(&models.LGU{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
