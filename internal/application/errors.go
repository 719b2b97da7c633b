package application

import (
	"errors"
	"fmt"

	"clearscene/internal/domain"
)

// Sentinel errors for common conditions
var (
	// ErrUnrecognizedFormat is re-exported from domain: a token matched
	// no supported identifier encoding.
	ErrUnrecognizedFormat = domain.ErrUnrecognizedFormat

	// ErrMissingRoot means the catalog root does not exist or is
	// unreadable. The only fatal condition of an aggregation run.
	ErrMissingRoot = errors.New("catalog root missing or unreadable")

	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Warnings accumulates non-fatal issues over a run. They are reported
// after output is written; none of them fail the run.
type Warnings []string

// Addf appends a formatted warning
func (w *Warnings) Addf(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}
