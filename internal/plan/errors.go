package plan

import (
	"errors"
	"fmt"
)

// ErrorKind classifies plan loading failures.
type ErrorKind string

const (
	// ErrKindRead indicates the source could not be read
	ErrKindRead ErrorKind = "read"

	// ErrKindParse indicates the content is not valid JSON or YAML
	ErrKindParse ErrorKind = "parse"

	// ErrKindUnsupported indicates the document has no recognizable plan shape
	ErrKindUnsupported ErrorKind = "unsupported"
)

// LoadError describes a failure to load a plan.
type LoadError struct {
	Kind   ErrorKind
	Source string
	Cause  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	source := e.Source
	if source == "" {
		source = "<stdin>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("plan %s error in %s: %v", e.Kind, source, e.Cause)
	}
	return fmt.Sprintf("plan %s error in %s", e.Kind, source)
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a LoadError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *LoadError
	if !errors.As(err, &le) {
		return false
	}
	return le.Kind == kind
}
