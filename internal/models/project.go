package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project status values.
const (
	PPAStatusPlanned   = "Planned"
	PPAStatusOngoing   = "Ongoing"
	PPAStatusCompleted = "Completed"
)

// Project is a funded project/program/activity (PPA) tied to one or more
// recommendations through related_rio_ids.
type Project struct {
	PPAID         uuid.UUID                   `gorm:"column:ppa_id;type:uuid;primaryKey" json:"ppa_id"`
	ProjectName   string                      `gorm:"column:project_name;not null" json:"project_name"`
	Status        string                      `gorm:"column:status;not null;default:Planned" json:"status"`
	RelatedRIOIDs datatypes.JSONSlice[string] `gorm:"column:related_rio_ids" json:"related_rio_ids"`
	EstimatedCost float64                     `gorm:"column:estimated_cost;not null;default:0" json:"estimated_cost"`
	ActualCost    float64                     `gorm:"column:actual_cost;not null;default:0" json:"actual_cost"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (Project) TableName() string {
	return "Projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.PPAID == uuid.Nil {
		p.PPAID = uuid.New()
	}
	return nil
}
