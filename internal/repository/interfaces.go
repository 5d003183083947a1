package repository

import (
	"project-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepositoryInterface defines the contract for project storage
type ProjectRepositoryInterface interface {
	WithTx(tx *gorm.DB) *ProjectRepository
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
	List(filter ProjectFilter) ([]models.Project, int64, error)
}

// ProjectAssociationRepositoryInterface defines the contract for the
// project association tables
type ProjectAssociationRepositoryInterface interface {
	WithTx(tx *gorm.DB) *ProjectAssociationRepository
	ReplaceTechnologies(projectID uuid.UUID, technologyIDs []uuid.UUID) error
	ReplaceUsers(projectID uuid.UUID, userIDs []uuid.UUID) error
	ListTechnologiesFor(projectID uuid.UUID) ([]models.Technology, error)
	ListUsersFor(projectID uuid.UUID) ([]models.ProjectUser, error)
	DeleteForProject(projectID uuid.UUID) error
	DeleteForTechnology(technologyID uuid.UUID) error
	DeleteForUser(userID uuid.UUID) error
}

// TechnologyRepositoryInterface defines the contract for technology storage
type TechnologyRepositoryInterface interface {
	WithTx(tx *gorm.DB) *TechnologyRepository
	Create(technology *models.Technology) error
	GetByID(id uuid.UUID) (*models.Technology, error)
	GetByName(name string) (*models.Technology, error)
	GetAll() ([]models.Technology, error)
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user storage
type UserRepositoryInterface interface {
	WithTx(tx *gorm.DB) *UserRepository
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Delete(id uuid.UUID) error
}

var (
	_ ProjectRepositoryInterface            = (*ProjectRepository)(nil)
	_ ProjectAssociationRepositoryInterface = (*ProjectAssociationRepository)(nil)
	_ TechnologyRepositoryInterface         = (*TechnologyRepository)(nil)
	_ UserRepositoryInterface               = (*UserRepository)(nil)
)
