package models

import (
	"github.com/google/uuid"
)

// ProjectUser represents the many-to-many relationship between projects and
// users, carrying the user's role within the project. The (project_id,
// user_id) pair is unique.
type ProjectUser struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_users_pair;index" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_users_pair;index" validate:"required"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectUser
func (ProjectUser) TableName() string {
	return "project_users"
}
