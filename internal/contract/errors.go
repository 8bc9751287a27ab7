package contract

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
)

// ValidationKind tells which input rule was broken.
type ValidationKind int

// All validation kinds.
const (
	InvalidPhone ValidationKind = iota // phone is not exactly 10 digits
	InvalidDate                        // birthday is not a DD.MM.YYYY calendar date
	ArgCount                           // wrong number of command arguments
)

// String returns a short name for the kind.
func (k ValidationKind) String() string {
	switch k {
	case InvalidPhone:
		return "invalid phone"
	case InvalidDate:
		return "invalid date"
	case ArgCount:
		return "wrong argument count"
	default:
		return "unknown"
	}
}

// ValidationError reports malformed user input.
type ValidationError struct {
	Kind  ValidationKind
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Value)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports an unknown contact, or an unknown phone on a known contact
// when Phone is set.
type NotFoundError struct {
	Name  string
	Phone string
}

func (e *NotFoundError) Error() string {
	if e.Phone != "" {
		return fmt.Sprintf("phone %s not found for contact %q", e.Phone, e.Name)
	}
	return fmt.Sprintf("contact %q not found", e.Name)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateError reports a phone that is already present on the contact.
type DuplicateError struct {
	Name  string
	Phone string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("phone %s already exists for contact %q", e.Phone, e.Name)
}

// Is matches ErrDuplicate.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// IsValidationKind reports whether err is a ValidationError of the given kind.
func IsValidationKind(err error, kind ValidationKind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}
