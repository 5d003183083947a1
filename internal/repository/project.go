package repository

import (
	"project-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update persists all scalar fields of a project and refreshes updated_at
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project row. Association rows are removed by the caller
// within the same transaction (application-emulated cascade).
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// Exists checks if a project exists by ID
func (r *ProjectRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List retrieves projects matching the filter plus the total count of
// matching rows before pagination. The count query shares the filter
// predicates but ignores sort and limit/offset.
func (r *ProjectRepository) List(filter ProjectFilter) ([]models.Project, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	query := filter.apply(r.db.Model(&models.Project{}))

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	var projects []models.Project
	err := query.
		Order(filter.orderClause()).
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}
