package service

import (
	"errors"
	"fmt"
	"time"

	"project-catalog-backend/internal/database/models"
	apperrors "project-catalog-backend/internal/errors"
	"project-catalog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	db        *gorm.DB
	repo      repository.UserRepositoryInterface
	assocRepo repository.ProjectAssociationRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:        db,
		repo:      repository.NewUserRepository(db),
		assocRepo: repository.NewProjectAssociationRepository(db),
		validator: validator.New(),
	}
}

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUser creates a user. Emails are unique; a duplicate email is
// rejected whether detected up front or by the unique index.
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	response := buildUserResponse(user)
	return &response, nil
}

// ListUsers returns all users ordered by name
func (s *UserService) ListUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, buildUserResponse(&users[i]))
	}
	return responses, nil
}

// DeleteUser removes a user and every project membership referencing it
// in one transaction. Projects themselves are untouched, even when the
// user was their owner.
func (s *UserService) DeleteUser(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.WithTx(tx).GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		if err := s.assocRepo.WithTx(tx).DeleteForUser(id); err != nil {
			return fmt.Errorf("failed to delete user memberships: %w", err)
		}
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

func buildUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
