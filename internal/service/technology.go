package service

import (
	"errors"
	"fmt"

	"project-catalog-backend/internal/database/models"
	apperrors "project-catalog-backend/internal/errors"
	"project-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnologyService handles business logic for technologies
type TechnologyService struct {
	db        *gorm.DB
	repo      repository.TechnologyRepositoryInterface
	assocRepo repository.ProjectAssociationRepositoryInterface
	validator *validator.Validate
}

// NewTechnologyService creates a new technology service
func NewTechnologyService(db *gorm.DB) *TechnologyService {
	return &TechnologyService{
		db:        db,
		repo:      repository.NewTechnologyRepository(db),
		assocRepo: repository.NewProjectAssociationRepository(db),
		validator: validator.New(),
	}
}

// CreateTechnologyRequest is the payload for creating a technology
type CreateTechnologyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// CreateTechnology creates a technology. Names are unique; a duplicate
// name is rejected whether detected up front or by the unique index.
func (s *TechnologyService) CreateTechnology(req *CreateTechnologyRequest) (*TechnologyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrTechnologyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check technology name: %w", err)
	}

	technology := &models.Technology{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(technology); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTechnologyExists
		}
		return nil, fmt.Errorf("failed to create technology: %w", err)
	}

	response := buildTechnologyResponse(technology)
	return &response, nil
}

// ListTechnologies returns all technologies ordered by name
func (s *TechnologyService) ListTechnologies() ([]TechnologyResponse, error) {
	technologies, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}

	responses := make([]TechnologyResponse, 0, len(technologies))
	for i := range technologies {
		responses = append(responses, buildTechnologyResponse(&technologies[i]))
	}
	return responses, nil
}

// DeleteTechnology removes a technology and every project association
// referencing it in one transaction. Projects themselves are untouched.
func (s *TechnologyService) DeleteTechnology(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.WithTx(tx).GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTechnologyNotFound
			}
			return fmt.Errorf("failed to get technology: %w", err)
		}
		if err := s.assocRepo.WithTx(tx).DeleteForTechnology(id); err != nil {
			return fmt.Errorf("failed to delete technology associations: %w", err)
		}
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete technology: %w", err)
		}
		return nil
	})
}
