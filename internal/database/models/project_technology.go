package models

import (
	"github.com/google/uuid"
)

// ProjectTechnology represents the many-to-many relationship between projects
// and technologies. The (project_id, technology_id) pair is unique; rows are
// only ever written as a full replacement of a project's technology set.
type ProjectTechnology struct {
	BaseModel
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_technologies_pair;index" validate:"required"`
	TechnologyID uuid.UUID `json:"technology_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_technologies_pair;index" validate:"required"`

	// Relationships
	Project    Project    `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Technology Technology `json:"technology,omitempty" gorm:"foreignKey:TechnologyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectTechnology
func (ProjectTechnology) TableName() string {
	return "project_technologies"
}
