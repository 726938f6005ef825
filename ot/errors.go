package ot

import (
	"errors"
	"fmt"
)

// ErrorSeverity represents the severity level of a font parsing error.
type ErrorSeverity int

const (
	// SeverityCritical indicates a severe error that makes the font unusable or unreliable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates a significant error that may affect functionality but doesn't prevent usage.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered during font parsing.
// Errors are accumulated during initial parsing and can be inspected after parsing completes.
type FontError struct {
	Table    Tag           // The table where the error occurred (e.g., "name"), or 0 for the header
	Section  string        // Specific section within the table (e.g., "NameRecord", "TableRecords")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset in the font file where the error occurred (0 if unknown)
}

// Error implements the error interface.
func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Table, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Table, e.Section, e.Issue)
}

// FontWarning represents a non-critical issue encountered during font parsing.
// Warnings indicate potential problems but do not prevent font usage.
type FontWarning struct {
	Table  Tag    // The table where the warning occurred
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset in the font file where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates errors and warnings during font parsing.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

// addError records a parsing error and returns it.
func (ec *errorCollector) addError(table Tag, section string, issue string, severity ErrorSeverity, offset uint32) FontError {
	fe := FontError{
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: severity,
		Offset:   offset,
	}
	ec.errors = append(ec.errors, fe)
	return fe
}

// addWarning records a parsing warning.
func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}

// --- Lookup errors ---------------------------------------------------------

// Sentinel errors for lookups into a parsed name table. Errors returned from
// lookups are of type *NameError and match one of these with errors.Is.
var (
	ErrMissingTable    = errors.New("font has no 'name' table")
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// NameErrorKind classifies a failed name table lookup.
type NameErrorKind int

const (
	MissingTable NameErrorKind = iota + 1
	OutOfRange
	InvalidArgument
)

func (k NameErrorKind) String() string {
	switch k {
	case MissingTable:
		return "MissingTable"
	case OutOfRange:
		return "OutOfRange"
	case InvalidArgument:
		return "InvalidArgument"
	}
	return "Unknown"
}

// NameError is the typed result of a failed lookup. It is never fatal and
// retrying the same lookup will yield the same error.
type NameError struct {
	Kind  NameErrorKind
	Index int // requested index or language ID
	Count int // number of available entries
}

func (e *NameError) Error() string {
	switch e.Kind {
	case MissingTable:
		return ErrMissingTable.Error()
	case OutOfRange:
		return fmt.Sprintf("%s: %d not in [0…%d)", ErrOutOfRange, e.Index, e.Count)
	case InvalidArgument:
		return fmt.Sprintf("%s: 0x%04x", ErrInvalidArgument, e.Index)
	}
	return "name table lookup failed"
}

// Is lets errors.Is match a NameError against the package's sentinel errors.
func (e *NameError) Is(target error) bool {
	switch target {
	case ErrMissingTable:
		return e.Kind == MissingTable
	case ErrOutOfRange:
		return e.Kind == OutOfRange
	case ErrInvalidArgument:
		return e.Kind == InvalidArgument
	}
	return false
}
