package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "project not found", ErrProjectNotFound.Error())
	assert.True(t, errors.Is(ErrProjectNotFound, &NotFoundError{Entity: "project"}))
	assert.False(t, errors.Is(ErrProjectNotFound, ErrTechnologyNotFound))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "technology already exists with this name", ErrTechnologyExists.Error())
	assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	assert.False(t, errors.Is(ErrTechnologyExists, ErrUserExists))
}

func TestValidationErrorMessage(t *testing.T) {
	withField := NewValidationError("rating", "out of range")
	assert.Equal(t, "validation error: rating - out of range", withField.Error())

	withoutField := NewValidationError("", "malformed payload")
	assert.Equal(t, "validation error: malformed payload", withoutField.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrProjectNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
	assert.False(t, IsNotFound(ErrUserExists))
	assert.False(t, IsNotFound(nil))
}

func TestIsAlreadyExists(t *testing.T) {
	assert.True(t, IsAlreadyExists(ErrUserExists))
	assert.True(t, IsAlreadyExists(fmt.Errorf("wrapped: %w", ErrTechnologyExists)))
	assert.False(t, IsAlreadyExists(ErrProjectNotFound))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidSortField))
	assert.True(t, IsValidation(NewValidationError("field", "message")))
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", ErrInvalidPage)))
	assert.False(t, IsValidation(ErrProjectNotFound))
}
