package repository

import (
	"fmt"
	"strings"

	"project-catalog-backend/internal/database/models"
	apperrors "project-catalog-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing defaults and bounds
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ProjectFilter describes the predicates, sort and pagination window for a
// project listing. All filter fields are optional; zero values mean the
// predicate is not applied. Filters combine with AND.
type ProjectFilter struct {
	// Search matches name or description, case-insensitive substring
	Search string
	// Technology matches the exact name of an associated technology
	Technology string
	// UserID matches projects associated with the given user
	UserID *uuid.UUID
	// MinRating and MaxRating bound the rating inclusively. Projects
	// without a rating never match a rating bound.
	MinRating *float64
	MaxRating *float64
	// Language matches the project language exactly
	Language string

	Sort  models.SortField
	Order models.SortOrder

	Page     int
	PageSize int
}

// NewProjectFilter returns a filter with the default sort and pagination
// window applied.
func NewProjectFilter() ProjectFilter {
	return ProjectFilter{
		Sort:     models.SortFieldCreatedAt,
		Order:    models.SortOrderDesc,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Validate checks the sort whitelist, pagination window and rating bounds
func (f ProjectFilter) Validate() error {
	if !f.Sort.IsValid() {
		return apperrors.ErrInvalidSortField
	}
	if !f.Order.IsValid() {
		return apperrors.ErrInvalidSortOrder
	}
	if f.Page < 1 {
		return apperrors.ErrInvalidPage
	}
	if f.PageSize < 1 || f.PageSize > MaxPageSize {
		return apperrors.ErrInvalidPageSize
	}
	if f.MinRating != nil && (*f.MinRating < 0 || *f.MinRating > 5) {
		return apperrors.ErrInvalidRatingBound
	}
	if f.MaxRating != nil && (*f.MaxRating < 0 || *f.MaxRating > 5) {
		return apperrors.ErrInvalidRatingBound
	}
	if f.MinRating != nil && f.MaxRating != nil && *f.MinRating > *f.MaxRating {
		return apperrors.ErrInvalidRatingBound
	}
	return nil
}

// Offset returns the row offset for the current page
func (f ProjectFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// apply adds the filter predicates to the query
func (f ProjectFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		db = db.Where("(LOWER(projects.name) LIKE ? OR LOWER(projects.description) LIKE ?)", pattern, pattern)
	}
	if f.Technology != "" {
		db = db.Where(`EXISTS (
			SELECT 1 FROM project_technologies pt
			JOIN technologies t ON t.id = pt.technology_id
			WHERE pt.project_id = projects.id AND t.name = ?
		)`, f.Technology)
	}
	if f.UserID != nil {
		db = db.Where(`EXISTS (
			SELECT 1 FROM project_users pu
			WHERE pu.project_id = projects.id AND pu.user_id = ?
		)`, *f.UserID)
	}
	if f.MinRating != nil {
		db = db.Where("projects.rating >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		db = db.Where("projects.rating <= ?", *f.MaxRating)
	}
	if f.Language != "" {
		db = db.Where("projects.language = ?", f.Language)
	}
	return db
}

// orderClause builds the ORDER BY clause. Sort and order come from closed
// enums validated beforehand, so interpolation is safe. The ID tie-break
// keeps pages stable when the sort column has duplicates.
func (f ProjectFilter) orderClause() string {
	return fmt.Sprintf("projects.%s %s, projects.id ASC", f.Sort, strings.ToUpper(string(f.Order)))
}
