// Package apperrors holds the typed outcomes returned by the workflows.
// None of them signal a fault: they describe input the caller can correct.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrForbidden is returned when the caller does not own the resource it tries to mutate.
var ErrForbidden = errors.New("caller is not allowed to modify this resource")

// Conflict kinds.
const (
	ConflictUsername      = "username"
	ConflictEmail         = "email"
	ConflictCollaboration = "collaboration"
)

// ValidationError describes one violated input constraint. An empty Field
// marks a form-level violation such as mismatched passwords.
type ValidationError struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// ValidationErrors collects every violation found in one submission.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether a violation for field is present.
func (e ValidationErrors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Invalid builds a single-violation ValidationErrors.
func Invalid(field, reason string) ValidationErrors {
	return ValidationErrors{{Field: field, Reason: reason}}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Kind string
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConflictUsername:
		return "username is already taken"
	case ConflictEmail:
		return "email is already in use"
	case ConflictCollaboration:
		return "a collaboration request to this account already exists"
	default:
		return e.Kind + " already exists"
	}
}

// NewConflict returns a ConflictError of the given kind.
func NewConflict(kind string) *ConflictError {
	return &ConflictError{Kind: kind}
}

// NotFoundError reports a lookup of an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NewNotFound returns a NotFoundError for entity with the given id.
func NewNotFound(entity string, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id.String()}
}

// IsConflict reports whether err is a ConflictError of the given kind.
// An empty kind matches any conflict.
func IsConflict(err error, kind string) bool {
	var c *ConflictError
	if !errors.As(err, &c) {
		return false
	}
	return kind == "" || c.Kind == kind
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// AsValidation extracts the validation violations carried by err.
func AsValidation(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}
