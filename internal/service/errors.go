package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPermissionDenied is returned when the acting user lacks the role an
// operation requires. It belongs to the caller layer; the core services
// never raise it on their own reads.
var ErrPermissionDenied = errors.New("permission denied")

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ValidationError indicates the request referenced ids that are not
// permitted. InvalidIDs carries the offending ids verbatim so callers can
// display them to the end user.
type ValidationError struct {
	Message    string
	InvalidIDs []string
}

func (e *ValidationError) Error() string {
	if len(e.InvalidIDs) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.InvalidIDs, ", "))
}

// ConflictError indicates the entity being created already exists.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
