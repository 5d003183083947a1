package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"project-catalog-backend/internal/database/models"
	apperrors "project-catalog-backend/internal/errors"
	"project-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects and their
// associations. Mutations that touch both the project row and the
// association tables run inside a single transaction.
type ProjectService struct {
	db        *gorm.DB
	repo      repository.ProjectRepositoryInterface
	assocRepo repository.ProjectAssociationRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		db:        db,
		repo:      repository.NewProjectRepository(db),
		assocRepo: repository.NewProjectAssociationRepository(db),
		validator: validator.New(),
	}
}

// CreateProjectRequest is the payload for creating a project. TechnologyIDs
// and UserIDs are optional; when present they set the initial association
// sets, an empty slice meaning no associations.
type CreateProjectRequest struct {
	Name          string       `json:"name" validate:"required,min=1,max=255"`
	Description   string       `json:"description" validate:"required"`
	RepositoryURL string       `json:"repository_url" validate:"required,url,max=500"`
	Language      string       `json:"language" validate:"required,min=1,max=100"`
	Rating        *float64     `json:"rating" validate:"omitempty,min=0,max=5"`
	TechnologyIDs *[]uuid.UUID `json:"technology_ids"`
	UserIDs       *[]uuid.UUID `json:"user_ids"`
}

// UpdateProjectRequest is the payload for updating a project. Nil fields
// are left unchanged. A non-nil TechnologyIDs or UserIDs replaces the full
// association set; nil leaves the current set untouched.
type UpdateProjectRequest struct {
	Name          *string      `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string      `json:"description" validate:"omitempty,min=1"`
	RepositoryURL *string      `json:"repository_url" validate:"omitempty,url,max=500"`
	Language      *string      `json:"language" validate:"omitempty,min=1,max=100"`
	Rating        *float64     `json:"rating" validate:"omitempty,min=0,max=5"`
	TechnologyIDs *[]uuid.UUID `json:"technology_ids"`
	UserIDs       *[]uuid.UUID `json:"user_ids"`
}

// ListProjectsRequest carries the query parameters of a project listing
type ListProjectsRequest struct {
	Search     string   `form:"search"`
	Technology string   `form:"technology"`
	UserID     string   `form:"user_id" validate:"omitempty,uuid"`
	MinRating  *float64 `form:"min_rating" validate:"omitempty,min=0,max=5"`
	MaxRating  *float64 `form:"max_rating" validate:"omitempty,min=0,max=5"`
	Language   string   `form:"language"`
	Sort       string   `form:"sort" validate:"omitempty,oneof=name created_at updated_at rating"`
	Order      string   `form:"order" validate:"omitempty,oneof=asc desc"`
	Page       *int     `form:"page" validate:"omitempty,min=1"`
	PageSize   *int     `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ProjectResponse is the API representation of a project
type ProjectResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	RepositoryURL string    `json:"repository_url"`
	Language      string    `json:"language"`
	Rating        *float64  `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TechnologyResponse is the API representation of a technology
type TechnologyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectMemberResponse is a user together with its role on a project
type ProjectMemberResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProjectAggregateResponse is a project with its full association sets
type ProjectAggregateResponse struct {
	ProjectResponse
	Technologies []TechnologyResponse    `json:"technologies"`
	Users        []ProjectMemberResponse `json:"users"`
}

// PaginationMeta describes the window of a paginated listing
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginationMeta computes the page count for a listing window. An empty
// result still reports one page, so total_pages is always a valid page number.
func NewPaginationMeta(page, pageSize int, totalItems int64) PaginationMeta {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// ProjectListResponse is a page of projects with pagination metadata
type ProjectListResponse struct {
	Items      []ProjectResponse `json:"items"`
	Pagination PaginationMeta    `json:"pagination"`
}

// CreateProject creates a project together with its initial association
// sets in one transaction. If any referenced technology or user does not
// exist nothing is persisted.
func (s *ProjectService) CreateProject(req *CreateProjectRequest) (*ProjectAggregateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	project := &models.Project{
		Name:          req.Name,
		Description:   req.Description,
		RepositoryURL: req.RepositoryURL,
		Language:      req.Language,
		Rating:        req.Rating,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		if req.TechnologyIDs != nil {
			if err := s.assocRepo.WithTx(tx).ReplaceTechnologies(project.ID, *req.TechnologyIDs); err != nil {
				return err
			}
		}
		if req.UserIDs != nil {
			if err := s.assocRepo.WithTx(tx).ReplaceUsers(project.ID, *req.UserIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProject(project.ID)
}

// GetProject retrieves a project with its technologies and members
func (s *ProjectService) GetProject(id uuid.UUID) (*ProjectAggregateResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	technologies, err := s.assocRepo.ListTechnologiesFor(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list project technologies: %w", err)
	}
	memberships, err := s.assocRepo.ListUsersFor(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list project users: %w", err)
	}

	return buildAggregateResponse(project, technologies, memberships), nil
}

// UpdateProject applies a partial update to a project. Scalar fields and
// association replacements commit atomically; updated_at refreshes on any
// successful update, association-only changes included.
func (s *ProjectService) UpdateProject(id uuid.UUID, req *UpdateProjectRequest) (*ProjectAggregateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		project, err := s.repo.WithTx(tx).GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to get project: %w", err)
		}

		if req.Name != nil {
			project.Name = *req.Name
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.RepositoryURL != nil {
			project.RepositoryURL = *req.RepositoryURL
		}
		if req.Language != nil {
			project.Language = *req.Language
		}
		if req.Rating != nil {
			project.Rating = req.Rating
		}

		if err := s.repo.WithTx(tx).Update(project); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		if req.TechnologyIDs != nil {
			if err := s.assocRepo.WithTx(tx).ReplaceTechnologies(id, *req.TechnologyIDs); err != nil {
				return err
			}
		}
		if req.UserIDs != nil {
			if err := s.assocRepo.WithTx(tx).ReplaceUsers(id, *req.UserIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProject(id)
}

// DeleteProject removes a project and its association rows in one
// transaction. Technologies and users referenced by the project survive.
func (s *ProjectService) DeleteProject(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.repo.WithTx(tx).Exists(id)
		if err != nil {
			return fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return apperrors.ErrProjectNotFound
		}
		if err := s.assocRepo.WithTx(tx).DeleteForProject(id); err != nil {
			return fmt.Errorf("failed to delete project associations: %w", err)
		}
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

// ListProjects returns a filtered, sorted page of projects with the total
// count of matches
func (s *ProjectService) ListProjects(req *ListProjectsRequest) (*ProjectListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	filter := repository.NewProjectFilter()
	filter.Search = req.Search
	filter.Technology = req.Technology
	filter.Language = req.Language
	filter.MinRating = req.MinRating
	filter.MaxRating = req.MaxRating
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, apperrors.NewValidationError("user_id", "must be a valid UUID")
		}
		filter.UserID = &userID
	}
	if req.Sort != "" {
		filter.Sort = models.SortField(req.Sort)
	}
	if req.Order != "" {
		filter.Order = models.SortOrder(req.Order)
	}
	if req.Page != nil {
		filter.Page = *req.Page
	}
	if req.PageSize != nil {
		filter.PageSize = *req.PageSize
	}

	projects, total, err := s.repo.List(filter)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	items := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, buildProjectResponse(&projects[i]))
	}

	return &ProjectListResponse{
		Items:      items,
		Pagination: NewPaginationMeta(filter.Page, filter.PageSize, total),
	}, nil
}

func buildProjectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:            project.ID,
		Name:          project.Name,
		Description:   project.Description,
		RepositoryURL: project.RepositoryURL,
		Language:      project.Language,
		Rating:        project.Rating,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

func buildAggregateResponse(project *models.Project, technologies []models.Technology, memberships []models.ProjectUser) *ProjectAggregateResponse {
	techResponses := make([]TechnologyResponse, 0, len(technologies))
	for i := range technologies {
		techResponses = append(techResponses, buildTechnologyResponse(&technologies[i]))
	}

	memberResponses := make([]ProjectMemberResponse, 0, len(memberships))
	for i := range memberships {
		m := &memberships[i]
		memberResponses = append(memberResponses, ProjectMemberResponse{
			ID:        m.User.ID,
			Name:      m.User.Name,
			Email:     m.User.Email,
			Role:      m.Role,
			CreatedAt: m.User.CreatedAt,
		})
	}

	return &ProjectAggregateResponse{
		ProjectResponse: buildProjectResponse(project),
		Technologies:    techResponses,
		Users:           memberResponses,
	}
}

func buildTechnologyResponse(technology *models.Technology) TechnologyResponse {
	return TechnologyResponse{
		ID:          technology.ID,
		Name:        technology.Name,
		Description: technology.Description,
		CreatedAt:   technology.CreatedAt,
	}
}
