package pbidoc

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidPackage indicates the input file is not a readable zip package.
var ErrInvalidPackage = errors.New("invalid report package")

// ErrEntryNotFound indicates a descriptor is missing from the package.
var ErrEntryNotFound = parser.ErrEntryNotFound

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	Entry     string
	Component string // "archive", "layout", "model"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Entry, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(entry, component string, err error) *ExtractionError {
	return &ExtractionError{
		Entry:     entry,
		Component: component,
		Err:       err,
	}
}
