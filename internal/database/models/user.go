package models

// User represents a user that can be associated with projects
type User struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Email string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
