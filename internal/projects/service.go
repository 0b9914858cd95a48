package projects

import (
	"context"
	"errors"

	"emis-backend/internal/models"
	"emis-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNameRequired  = errors.New("Project name is required")
	ErrInvalidStatus = errors.New("Status must be one of Planned, Ongoing, Completed")
	ErrNotFound      = errors.New("Project not found")
)

// Service encapsulates project (PPA) operations.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new project.
type CreateInput struct {
	ProjectName   string   `json:"project_name"`
	Status        string   `json:"status"`
	RelatedRIOIDs []string `json:"related_rio_ids"`
	EstimatedCost float64  `json:"estimated_cost"`
	ActualCost    float64  `json:"actual_cost"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ProjectName   *string   `json:"project_name"`
	Status        *string   `json:"status"`
	RelatedRIOIDs *[]string `json:"related_rio_ids"`
	EstimatedCost *float64  `json:"estimated_cost"`
	ActualCost    *float64  `json:"actual_cost"`
}

func validStatus(st string) bool {
	return validation.OneOf(st, models.PPAStatusPlanned, models.PPAStatusOngoing, models.PPAStatusCompleted)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Project, error) {
	if input.ProjectName == "" {
		return nil, ErrNameRequired
	}
	status := input.Status
	if status == "" {
		status = models.PPAStatusPlanned
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	p := models.Project{
		ProjectName:   input.ProjectName,
		Status:        status,
		RelatedRIOIDs: datatypes.NewJSONSlice(input.RelatedRIOIDs),
		EstimatedCost: input.EstimatedCost,
		ActualCost:    input.ActualCost,
	}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) List(ctx context.Context) ([]models.Project, error) {
	var items []models.Project
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	if err := s.DB.WithContext(ctx).Where("ppa_id = ?", id).First(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.ProjectName != nil {
		if *input.ProjectName == "" {
			return nil, ErrNameRequired
		}
		updates["project_name"] = *input.ProjectName
	}
	if input.Status != nil {
		if !validStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *input.Status
	}
	if input.RelatedRIOIDs != nil {
		updates["related_rio_ids"] = datatypes.NewJSONSlice(*input.RelatedRIOIDs)
	}
	if input.EstimatedCost != nil {
		updates["estimated_cost"] = *input.EstimatedCost
	}
	if input.ActualCost != nil {
		updates["actual_cost"] = *input.ActualCost
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(p).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("ppa_id = ?", id).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
