package repository

import (
	"project-catalog-backend/internal/database/models"
	apperrors "project-catalog-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectAssociationRepository manages the project-technology and
// project-user join tables. Replacement operations assume they run inside
// a transaction supplied via WithTx; they validate referenced IDs, delete
// the current set and insert the new one as a single logical step.
type ProjectAssociationRepository struct {
	db *gorm.DB
}

// NewProjectAssociationRepository creates a new association repository
func NewProjectAssociationRepository(db *gorm.DB) *ProjectAssociationRepository {
	return &ProjectAssociationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ProjectAssociationRepository) WithTx(tx *gorm.DB) *ProjectAssociationRepository {
	return &ProjectAssociationRepository{db: tx}
}

// ReplaceTechnologies replaces the full technology set of a project.
// Every referenced technology must exist or the operation fails without
// touching the current associations. Duplicate IDs collapse to one row.
func (r *ProjectAssociationRepository) ReplaceTechnologies(projectID uuid.UUID, technologyIDs []uuid.UUID) error {
	ids := dedupeIDs(technologyIDs)

	if len(ids) > 0 {
		var count int64
		if err := r.db.Model(&models.Technology{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return apperrors.ErrTechnologyNotFound
		}
	}

	if err := r.db.Where("project_id = ?", projectID).Delete(&models.ProjectTechnology{}).Error; err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	rows := make([]models.ProjectTechnology, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ProjectTechnology{
			ProjectID:    projectID,
			TechnologyID: id,
		})
	}
	return r.db.Create(&rows).Error
}

// ReplaceUsers replaces the full user set of a project. The first user in
// the list becomes the owner, the rest contributors. Every referenced user
// must exist or the operation fails without touching the current
// associations. Duplicate IDs collapse to one row, keeping first position.
func (r *ProjectAssociationRepository) ReplaceUsers(projectID uuid.UUID, userIDs []uuid.UUID) error {
	ids := dedupeIDs(userIDs)

	if len(ids) > 0 {
		var count int64
		if err := r.db.Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return apperrors.ErrUserNotFound
		}
	}

	if err := r.db.Where("project_id = ?", projectID).Delete(&models.ProjectUser{}).Error; err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	rows := make([]models.ProjectUser, 0, len(ids))
	for i, id := range ids {
		role := models.UserRoleContributor
		if i == 0 {
			role = models.UserRoleOwner
		}
		rows = append(rows, models.ProjectUser{
			ProjectID: projectID,
			UserID:    id,
			Role:      role,
		})
	}
	return r.db.Create(&rows).Error
}

// ListTechnologiesFor returns the technologies associated with a project,
// ordered by technology name
func (r *ProjectAssociationRepository) ListTechnologiesFor(projectID uuid.UUID) ([]models.Technology, error) {
	var technologies []models.Technology
	err := r.db.
		Joins("JOIN project_technologies ON project_technologies.technology_id = technologies.id").
		Where("project_technologies.project_id = ?", projectID).
		Order("technologies.name ASC").
		Find(&technologies).Error
	if err != nil {
		return nil, err
	}
	return technologies, nil
}

// ListUsersFor returns the membership rows of a project with the user
// preloaded, ordered by user name
func (r *ProjectAssociationRepository) ListUsersFor(projectID uuid.UUID) ([]models.ProjectUser, error) {
	var memberships []models.ProjectUser
	err := r.db.
		Joins("JOIN users ON users.id = project_users.user_id").
		Where("project_users.project_id = ?", projectID).
		Order("users.name ASC").
		Preload("User").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// DeleteForProject removes all association rows of a project
func (r *ProjectAssociationRepository) DeleteForProject(projectID uuid.UUID) error {
	if err := r.db.Where("project_id = ?", projectID).Delete(&models.ProjectTechnology{}).Error; err != nil {
		return err
	}
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectUser{}).Error
}

// DeleteForTechnology removes all association rows referencing a technology
func (r *ProjectAssociationRepository) DeleteForTechnology(technologyID uuid.UUID) error {
	return r.db.Where("technology_id = ?", technologyID).Delete(&models.ProjectTechnology{}).Error
}

// DeleteForUser removes all membership rows referencing a user
func (r *ProjectAssociationRepository) DeleteForUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.ProjectUser{}).Error
}

// dedupeIDs removes duplicates preserving first occurrence order
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
