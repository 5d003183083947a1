package repository

import (
	"project-catalog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnologyRepository handles database operations for technologies
type TechnologyRepository struct {
	db *gorm.DB
}

// NewTechnologyRepository creates a new technology repository
func NewTechnologyRepository(db *gorm.DB) *TechnologyRepository {
	return &TechnologyRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *TechnologyRepository) WithTx(tx *gorm.DB) *TechnologyRepository {
	return &TechnologyRepository{db: tx}
}

// Create creates a new technology
func (r *TechnologyRepository) Create(technology *models.Technology) error {
	return r.db.Create(technology).Error
}

// GetByID retrieves a technology by ID
func (r *TechnologyRepository) GetByID(id uuid.UUID) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// GetByName retrieves a technology by its unique name
func (r *TechnologyRepository) GetByName(name string) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// GetAll retrieves all technologies ordered by name
func (r *TechnologyRepository) GetAll() ([]models.Technology, error) {
	var technologies []models.Technology
	err := r.db.Order("name ASC").Find(&technologies).Error
	if err != nil {
		return nil, err
	}
	return technologies, nil
}

// Delete deletes a technology row. Association rows are removed by the
// caller within the same transaction.
func (r *TechnologyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Technology{}, "id = ?", id).Error
}
