package testutils

import (
	"fmt"
	"time"

	"project-catalog-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	rating := 4.0
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:          "Test Project",
		Description:   "A test project for testing purposes",
		RepositoryURL: "https://example.com/test/project",
		Language:      "Go",
		Rating:        &rating,
		UpdatedAt:     time.Now(),
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithRating sets a custom rating for the project
func (f *ProjectFactory) WithRating(rating float64) *models.Project {
	project := f.Create()
	project.Rating = &rating
	return project
}

// WithoutRating clears the rating
func (f *ProjectFactory) WithoutRating() *models.Project {
	project := f.Create()
	project.Rating = nil
	return project
}

// WithLanguage sets a custom language for the project
func (f *ProjectFactory) WithLanguage(language string) *models.Project {
	project := f.Create()
	project.Language = language
	return project
}

// TechnologyFactory provides methods to create test Technology data
type TechnologyFactory struct{}

// NewTechnologyFactory creates a new TechnologyFactory
func NewTechnologyFactory() *TechnologyFactory {
	return &TechnologyFactory{}
}

// Create creates a test Technology with a unique name
func (f *TechnologyFactory) Create() *models.Technology {
	id := uuid.New()
	return &models.Technology{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Name:        "tech-" + id.String()[:8],
		Description: "A test technology",
	}
}

// WithName sets a custom name for the technology
func (f *TechnologyFactory) WithName(name string) *models.Technology {
	technology := f.Create()
	technology.Name = name
	return technology
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Name:  "Test User",
		Email: fmt.Sprintf("user-%s@test.com", id.String()[:8]),
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Project    *ProjectFactory
	Technology *TechnologyFactory
	User       *UserFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:    NewProjectFactory(),
		Technology: NewTechnologyFactory(),
		User:       NewUserFactory(),
	}
}
