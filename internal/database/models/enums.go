package models

// UserRole defines the role a user holds within a project
type UserRole string

const (
	UserRoleOwner       UserRole = "owner"
	UserRoleContributor UserRole = "contributor"
	UserRoleViewer      UserRole = "viewer"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleContributor, UserRoleViewer:
		return true
	}
	return false
}

// SortField defines the project fields that listings can be ordered by
type SortField string

const (
	SortFieldName      SortField = "name"
	SortFieldCreatedAt SortField = "created_at"
	SortFieldUpdatedAt SortField = "updated_at"
	SortFieldRating    SortField = "rating"
)

// IsValid checks if the SortField is valid
func (s SortField) IsValid() bool {
	switch s {
	case SortFieldName, SortFieldCreatedAt, SortFieldUpdatedAt, SortFieldRating:
		return true
	}
	return false
}

// SortOrder defines the direction of a listing's ordering
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// IsValid checks if the SortOrder is valid
func (o SortOrder) IsValid() bool {
	switch o {
	case SortOrderAsc, SortOrderDesc:
		return true
	}
	return false
}
