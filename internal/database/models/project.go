package models

import (
	"time"
)

// Project represents a code project in the catalog
type Project struct {
	BaseModel
	Name          string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description   string    `json:"description" gorm:"type:text;not null" validate:"required"`
	RepositoryURL string    `json:"repository_url" gorm:"not null;size:500" validate:"required,url,max=500"`
	Language      string    `json:"language" gorm:"not null;size:100;index" validate:"required,min=1,max=100"`
	Rating        *float64  `json:"rating,omitempty" gorm:"check:rating >= 0 AND rating <= 5" validate:"omitempty,min=0,max=5"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	ProjectTechnologies []ProjectTechnology `json:"project_technologies,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	ProjectUsers        []ProjectUser       `json:"project_users,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
