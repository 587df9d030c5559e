package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "solution"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProjectNotFound, ErrProjectNotFound))
		assert.False(t, errors.Is(ErrProjectNotFound, ErrSolutionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrProjectNotFound))
		assert.True(t, IsNotFound(ErrSolutionLayerNotFound))
		assert.False(t, IsNotFound(ErrProjectExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project", Context: "with this title"}
		assert.Equal(t, "project already exists with this title", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "project"}
		assert.Equal(t, "project already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "solution", Context: "with this title"}
		err2 := &AlreadyExistsError{Entity: "solution"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSolutionExists))
		assert.False(t, IsAlreadyExists(ErrSolutionNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "goal", Message: "must be between 0 and 1"}
		assert.Equal(t, "validation error: goal - must be between 0 and 1", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "duplicate theme override"}
		assert.Equal(t, "validation error: duplicate theme override", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := &ValidationError{Field: "type", Message: "invalid layer type"}
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrProjectNotFound))
	})
}

func TestReferentialError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ReferentialError{Entity: "project layer", Message: "belongs to a different project"}
		assert.Equal(t, "referential error: project layer belongs to a different project", err.Error())
	})

	t.Run("IsReferential helper", func(t *testing.T) {
		err := &ReferentialError{Entity: "project layer", Message: "is not a weight layer"}
		assert.True(t, IsReferential(err))
		assert.False(t, IsReferential(ErrProjectLayerNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	err := &AuthenticationError{Message: "invalid token"}
	assert.Equal(t, "invalid token", err.Error())
}

func TestHelpersUnwrapWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading project: %w", ErrProjectNotFound)
	assert.True(t, IsNotFound(wrapped))

	wrapped = fmt.Errorf("creating solution: %w", ErrSolutionExists)
	assert.True(t, IsAlreadyExists(wrapped))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsValidation(errors.New("plain")))
}
