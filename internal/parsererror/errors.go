// Package parsererror defines the typed errors surfaced by the
// ingestion pipeline. Oracle failures are deliberately absent: they are
// recovered per fragment and never propagate to callers.
package parsererror

import "fmt"

// InvalidFormatError indicates an input file that cannot be segmented:
// missing, unreadable, or not one of the supported document formats.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ExtractionError wraps a failure to pull text or rows out of a
// document before any oracle call is made.
type ExtractionError struct {
	FilePath string
	Stage    string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for '%s' during %s: %v",
		e.FilePath, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ValidationError represents rejected caller input, such as an empty
// rule keyword or a malformed query.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}
