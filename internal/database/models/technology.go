package models

// Technology represents a technology that projects can be associated with.
// Names are globally unique; technologies are created once and never updated
// in place.
type Technology struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex:idx_technologies_name;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Technology
func (Technology) TableName() string {
	return "technologies"
}
