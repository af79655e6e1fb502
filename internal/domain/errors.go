package domain

import (
	"github.com/cockroachdb/errors"
)

// Error categories. Every rule violation raised by the domain carries exactly
// one of these marks; callers test for them with errors.Is.
var (
	// ErrValidation marks malformed input: negative values, empty collections,
	// unknown status labels.
	ErrValidation = errors.New("validation error")
	// ErrReference marks a dangling reference to a product, menu group, menu or table.
	ErrReference = errors.New("reference error")
	// ErrNotFound marks an operation target that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a state-based rule violation.
	ErrConflict = errors.New("conflict")
)

// ErrEmptyOrder is returned when an order is placed without line items.
var ErrEmptyOrder = errors.Mark(errors.New("order must contain at least one line item"), ErrValidation)

func Validationf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrValidation)
}

func Referencef(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrReference)
}

func NotFoundf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrNotFound)
}

func Conflictf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrConflict)
}

// Kind reports the category of err, or "internal" for errors that carry no mark.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrReference):
		return "reference"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
