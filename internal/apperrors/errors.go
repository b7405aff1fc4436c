package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDependency indicates that an external dependency was unreachable and its
// failure was folded into a validation outcome. It wraps ErrValidation so the
// client-facing status stays the same, while callers can still tell "user
// genuinely absent" apart from "identity service down" via errors.Is.
var ErrDependency = fmt.Errorf("dependency unavailable: %w", ErrValidation)
