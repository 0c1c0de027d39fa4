package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in query processing the error occurred
type Phase string

const (
	PhaseQuery Phase = "query" // query validation and orchestration
	PhaseParse Phase = "parse" // resource path tokenization
	PhaseMatch Phase = "match" // precedence matching
	PhaseCache Phase = "cache" // cached resolution
)

// Kind categorizes the error
type Kind string

const (
	KindNoDatabase        Kind = "no_database"        // database absent or empty
	KindInvalidName       Kind = "invalid_name"       // resource name missing or untokenizable
	KindInvalidClass      Kind = "invalid_class"      // resource class supplied but untokenizable
	KindComponentMismatch Kind = "component_mismatch" // name and class component counts differ
	KindAllocation        Kind = "allocation"         // backing store could not be allocated
	KindNoMatch           Kind = "no_match"           // no database entry matched the query
	KindInvalidPath       Kind = "invalid_path"       // malformed resource path text
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Input    string // offending resource path, when known
	Detail   string
	Position int // byte offset into Input for tokenizer errors, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Input != "" {
		b.WriteString(" in ")
		b.WriteString(strconv.Quote(e.Input))
	}

	if e.Position >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Position))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err, or any error it wraps, is an Error of the
// given kind regardless of phase
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:    phase,
			Kind:     kind,
			Position: -1,
		},
	}
}

// Input sets the offending resource path
func (b *Builder) Input(s string) *Builder {
	b.err.Input = s
	return b
}

// Position sets the byte offset of the offending character
func (b *Builder) Position(n int) *Builder {
	b.err.Position = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NoDatabase creates the error returned for an absent or empty database
func NoDatabase() *Error {
	return &Error{
		Phase:    PhaseQuery,
		Kind:     KindNoDatabase,
		Detail:   "database is nil or empty",
		Position: -1,
	}
}

// InvalidName creates an invalid resource name error
func InvalidName(name string, cause error) *Error {
	return &Error{
		Phase:    PhaseQuery,
		Kind:     KindInvalidName,
		Input:    name,
		Detail:   "resource name does not tokenize",
		Cause:    cause,
		Position: -1,
	}
}

// InvalidClass creates an invalid resource class error
func InvalidClass(class string, cause error) *Error {
	return &Error{
		Phase:    PhaseQuery,
		Kind:     KindInvalidClass,
		Input:    class,
		Detail:   "resource class does not tokenize",
		Cause:    cause,
		Position: -1,
	}
}

// ComponentMismatch creates an arity error for a query whose name and
// class tokenize to different component counts
func ComponentMismatch(name, class string, nameCount, classCount int) *Error {
	return &Error{
		Phase: PhaseQuery,
		Kind:  KindComponentMismatch,
		Input: name,
		Detail: fmt.Sprintf("name has %d components, class %q has %d",
			nameCount, class, classCount),
		Position: -1,
	}
}

// AllocationFailed creates a backing store allocation error
func AllocationFailed(detail string, cause error) *Error {
	return &Error{
		Phase:    PhaseCache,
		Kind:     KindAllocation,
		Detail:   detail,
		Cause:    cause,
		Position: -1,
	}
}

// NoMatch creates the error returned when no database entry matches
func NoMatch(name string) *Error {
	return &Error{
		Phase:    PhaseMatch,
		Kind:     KindNoMatch,
		Input:    name,
		Detail:   "no matching entry",
		Position: -1,
	}
}

// InvalidPath creates a tokenizer error for malformed resource path text
func InvalidPath(input string, offset int, detail string) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindInvalidPath,
		Input:    input,
		Detail:   detail,
		Position: offset,
	}
}
