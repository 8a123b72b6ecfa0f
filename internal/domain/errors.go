package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by repositories, services and the delivery layer.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNoPlacesLeft          = errors.New("no places left")
	ErrCapacityExceeded      = errors.New("capacity exceeded")
	ErrDuplicateRegistration = errors.New("user already registered on event")
	ErrOccupancyCorrupted    = errors.New("occupancy would become negative")
	ErrValidationFailed      = errors.New("validation failed")
	ErrTransient             = errors.New("transient storage failure")
)

// Kinds of entity a NotFoundError may refer to.
const (
	KindEvent        = "event"
	KindUser         = "user"
	KindRegistration = "registration"
)

// NotFoundError reports that a referenced entity does not exist.
// errors.Is(err, ErrNotFound) is true for every NotFoundError.
type NotFoundError struct {
	Kind string
	Key  string
}

// NewNotFound returns a NotFoundError for the given kind and key.
func NewNotFound(kind, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return e.Kind + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFoundKind reports whether err is a NotFoundError of the given kind.
func IsNotFoundKind(err error, kind string) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}

// FieldError describes one failed rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries the field-level details of rejected input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
