package schema

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes schema-build errors.
type ErrorKind string

const (
	KindMissingByteOrder     ErrorKind = "missing_byte_order"
	KindConflictingByteOrder ErrorKind = "conflicting_byte_order"
	KindIncompleteIdentifier ErrorKind = "incomplete_identifier"
	KindMalformedIdentifier  ErrorKind = "malformed_identifier"
	KindNoFields             ErrorKind = "no_fields"
	KindUnknownType          ErrorKind = "unknown_type"
	KindUnknownAttribute     ErrorKind = "unknown_attribute"
	KindRecursiveRecord      ErrorKind = "recursive_record"
)

// Sentinels for errors.Is. Any *Error with the same Kind matches.
var (
	ErrMissingByteOrder     = &Error{Kind: KindMissingByteOrder}
	ErrConflictingByteOrder = &Error{Kind: KindConflictingByteOrder}
	ErrIncompleteIdentifier = &Error{Kind: KindIncompleteIdentifier}
	ErrMalformedIdentifier  = &Error{Kind: KindMalformedIdentifier}
	ErrNoFields             = &Error{Kind: KindNoFields}
	ErrUnknownType          = &Error{Kind: KindUnknownType}
	ErrUnknownAttribute     = &Error{Kind: KindUnknownAttribute}
	ErrRecursiveRecord      = &Error{Kind: KindRecursiveRecord}
)

// Error is a schema-build error. Schema construction never yields a partial
// schema; every Build failure is one or more of these.
type Error struct {
	Kind   ErrorKind
	Record string
	// Field is the field label ("" for record-level errors).
	Field  string
	Index  int
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("[schema] ")
	b.WriteString(string(e.Kind))

	if e.Record != "" {
		b.WriteString(" at ")
		b.WriteString(e.Record)
		if e.Field != "" {
			b.WriteByte('.')
			b.WriteString(e.Field)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func recordError(kind ErrorKind, record, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Record: record,
		Index:  -1,
		Detail: fmt.Sprintf(format, args...),
	}
}

func fieldError(kind ErrorKind, record string, index int, name, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Record: record,
		Field:  label(index, name),
		Index:  index,
		Detail: fmt.Sprintf(format, args...),
	}
}

func label(index int, name string) string {
	if name == "" || name == "_" {
		return fmt.Sprintf("#%d", index)
	}
	return name
}
