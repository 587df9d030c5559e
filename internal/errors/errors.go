package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this title"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error raised before any write
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ReferentialError represents a cross-entity constraint violation: the
// referenced entity exists but cannot be used in this position, e.g. a layer
// from another project or a weight layer placed in the theme-override list.
type ReferentialError struct {
	Entity  string
	Message string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("referential error: %s %s", e.Entity, e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrFileNotFound          = &NotFoundError{Entity: "file"}
	ErrProjectLayerNotFound  = &NotFoundError{Entity: "project layer"}
	ErrSolutionNotFound      = &NotFoundError{Entity: "solution"}
	ErrSolutionLayerNotFound = &NotFoundError{Entity: "solution layer"}
)

// Already Exists Errors
var (
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrProjectExists       = &AlreadyExistsError{Entity: "project", Context: "with this title"}
	ErrSolutionExists      = &AlreadyExistsError{Entity: "solution", Context: "with this title"}
	ErrSolutionLayerExists = &AlreadyExistsError{Entity: "solution layer", Context: "for this solution and project layer"}
)

// IsNotFound checks whether err is any NotFoundError
func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

// IsAlreadyExists checks whether err is any AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var t *AlreadyExistsError
	return errors.As(err, &t)
}

// IsValidation checks whether err is any ValidationError
func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

// IsReferential checks whether err is any ReferentialError
func IsReferential(err error) bool {
	var t *ReferentialError
	return errors.As(err, &t)
}
