package equipment

import (
	"context"
	"errors"

	"emis-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNameRequired     = errors.New("Equipment name is required")
	ErrBuildingRequired = errors.New("Building (fsbd_id) is required")
	ErrNotFound         = errors.New("Equipment not found")
	ErrBuildingNotFound = errors.New("Building not found")
)

// derivedMonthlyKWh is the MADE energy estimate: rated power × daily hours ×
// a flat 30-day month.
func derivedMonthlyKWh(powerKW, hoursPerDay float64) float64 {
	return powerKW * hoursPerDay * 30
}

// Service encapsulates equipment (MADE) operations. MonthlyKWh is recomputed
// on every write; whatever value arrives in the payload or sits in the row is
// ignored as input.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new equipment record.
type CreateInput struct {
	FSBDID        uuid.UUID `json:"fsbd_id"`
	Name          string    `json:"name"`
	PowerRatingKW float64   `json:"power_rating_kw"`
	HoursPerDay   float64   `json:"hours_per_day"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name          *string  `json:"name"`
	PowerRatingKW *float64 `json:"power_rating_kw"`
	HoursPerDay   *float64 `json:"hours_per_day"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Equipment, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.FSBDID == uuid.Nil {
		return nil, ErrBuildingRequired
	}
	var building models.Building
	if err := s.DB.WithContext(ctx).Where("fsbd_id = ?", input.FSBDID).First(&building).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBuildingNotFound
		}
		return nil, err
	}
	e := models.Equipment{
		FSBDID:        input.FSBDID,
		Name:          input.Name,
		PowerRatingKW: input.PowerRatingKW,
		HoursPerDay:   input.HoursPerDay,
		MonthlyKWh:    derivedMonthlyKWh(input.PowerRatingKW, input.HoursPerDay),
	}
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByBuilding returns all equipment attached to a building.
func (s *Service) ListByBuilding(ctx context.Context, fsbdID uuid.UUID) ([]models.Equipment, error) {
	var items []models.Equipment
	if err := s.DB.WithContext(ctx).Where("fsbd_id = ?", fsbdID).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	var e models.Equipment
	if err := s.DB.WithContext(ctx).Where("equipment_id = ?", id).First(&e).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Update applies the partial update and always recomputes monthly_kwh from
// the resulting power/hours pair.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Equipment, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	power := e.PowerRatingKW
	hours := e.HoursPerDay
	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		updates["name"] = *input.Name
	}
	if input.PowerRatingKW != nil {
		power = *input.PowerRatingKW
		updates["power_rating_kw"] = power
	}
	if input.HoursPerDay != nil {
		hours = *input.HoursPerDay
		updates["hours_per_day"] = hours
	}
	updates["monthly_kwh"] = derivedMonthlyKWh(power, hours)
	if err := s.DB.WithContext(ctx).Model(e).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("equipment_id = ?", id).Delete(&models.Equipment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
