package cgats

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure from parsing, serialization, or a comparison.
type Kind int

const (
	KindOther Kind = iota
	KindEmptyFile
	KindNoData
	KindNoDataFormat
	KindFormatDataMismatch
	KindUnknownVendor
	KindUnknownFormatType
	KindInvalidID
	KindCannotCompare
	KindIncompleteData
	KindFileError
	KindWriteError
	KindInvariantViolation
)

var kindNames = map[Kind]string{
	KindOther:              "Other",
	KindEmptyFile:          "EmptyFile",
	KindNoData:             "NoData",
	KindNoDataFormat:       "NoDataFormat",
	KindFormatDataMismatch: "FormatDataMismatch",
	KindUnknownVendor:      "UnknownVendor",
	KindUnknownFormatType:  "UnknownFormatType",
	KindInvalidID:          "InvalidID",
	KindCannotCompare:      "CannotCompare",
	KindIncompleteData:     "IncompleteData",
	KindFileError:          "FileError",
	KindWriteError:         "WriteError",
	KindInvariantViolation: "InvariantViolation",
}

var kindMessages = map[Kind]string{
	KindOther:              "error",
	KindEmptyFile:          "file is empty",
	KindNoData:             "DATA not found",
	KindNoDataFormat:       "DATA_FORMAT not found",
	KindFormatDataMismatch: "DATA length does not match DATA_FORMAT length",
	KindUnknownVendor:      "cannot determine vendor",
	KindUnknownFormatType:  "unknown data format type",
	KindInvalidID:          "SAMPLE_ID is not an integer",
	KindCannotCompare:      "cannot compare data sets",
	KindIncompleteData:     "not enough data for the calculation",
	KindFileError:          "problem reading file",
	KindWriteError:         "problem writing file",
	KindInvariantViolation: "internal invariant violated",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors, one per Kind. Compare with errors.Is.
var (
	ErrOther              = &Error{Kind: KindOther}
	ErrEmptyFile          = &Error{Kind: KindEmptyFile}
	ErrNoData             = &Error{Kind: KindNoData}
	ErrNoDataFormat       = &Error{Kind: KindNoDataFormat}
	ErrFormatDataMismatch = &Error{Kind: KindFormatDataMismatch}
	ErrUnknownVendor      = &Error{Kind: KindUnknownVendor}
	ErrUnknownFormatType  = &Error{Kind: KindUnknownFormatType}
	ErrInvalidID          = &Error{Kind: KindInvalidID}
	ErrCannotCompare      = &Error{Kind: KindCannotCompare}
	ErrIncompleteData     = &Error{Kind: KindIncompleteData}
	ErrFileError          = &Error{Kind: KindFileError}
	ErrWriteError         = &Error{Kind: KindWriteError}
	ErrInvariantViolation = &Error{Kind: KindInvariantViolation}
)

// Error is the error type returned by every operation in this module.
//
// Kind identifies the failure class. Op names the operation that failed
// (for example "parse" or "average"), Path the file involved if any, and
// Detail carries free-form context such as the offending token or line.
// Err is an optional underlying cause.
type Error struct {
	Kind   Kind
	Op     string
	Path   string
	Detail string
	Err    error
}

// newError builds an *Error. Detail is formatted with fmt.Sprintf when args
// are supplied.
func newError(kind Kind, op, detail string, args ...interface{}) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Kind: kind, Op: op, Detail: detail}
}

// NewError creates an *Error for callers outside this package (the
// comparison engine and the report use it to stay inside one taxonomy).
func NewError(kind Kind, op, detail string, args ...interface{}) *Error {
	return newError(kind, op, detail, args...)
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cgats")
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(e.Op)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " %q", e.Path)
	}
	fmt.Fprintf(&b, ": %s: %s", e.Kind, kindMessages[e.Kind])
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind. This makes the
// Err* sentinels match any error of their kind regardless of context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// withPath returns a copy of e annotated with a file path.
func (e *Error) withPath(path string) *Error {
	c := *e
	c.Path = path
	return &c
}

// KindOf returns the Kind of err, or KindOther if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}
