// Package errs defines the error taxonomy shared by the jnbt codec packages.
//
// Errors are grouped into a small set of categories exposed as sentinel
// errors. Detailed errors carry their context in a typed struct and unwrap
// to their category, so callers can match either way:
//
//	var wrong *errs.WrongTagError
//	if errors.As(err, &wrong) {
//	    // inspect wrong.Expected / wrong.Actual
//	}
//	if errors.Is(err, errs.ErrFormat) {
//	    // any structural violation
//	}
//
// Every error is fatal to the operation that produced it; the codec never
// retries or recovers internally.
package errs

import (
	"errors"
	"fmt"

	"github.com/theJ8910/jnbt/format"
)

// Error categories.
var (
	// ErrFormat indicates malformed NBT structure: a wrong root tag, an
	// unknown tag type, a negative or oversized length field, a duplicate
	// compound name, a list element type mismatch, or a declared-vs-actual
	// length mismatch.
	ErrFormat = errors.New("nbt: format violation")

	// ErrOutOfRange indicates a scalar, string, or declared length outside
	// the bounds of its wire type.
	ErrOutOfRange = errors.New("nbt: value out of range")

	// ErrConversion indicates a native value that cannot be mapped to a
	// tag type without caller-supplied context.
	ErrConversion = errors.New("nbt: ambiguous conversion")

	// ErrUnexpectedEOF indicates the input stream was exhausted before a
	// required field was fully read.
	ErrUnexpectedEOF = errors.New("nbt: unexpected end of input")

	// ErrUsage indicates a writer method called in a context where it is
	// structurally invalid. Only the safe writer detects this.
	ErrUsage = errors.New("nbt: invalid writer usage")

	// ErrNoWriteTarget is returned by Document.Write when the document has
	// no bound write target.
	ErrNoWriteTarget = errors.New("nbt: document has no write target")
)

// OutOfRangeError reports a value outside the inclusive range of its type.
type OutOfRangeError struct {
	Value int64
	Min   int64
	Max   int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("nbt: value %d is outside of expected range [%d,%d]", e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// WrongTagError reports a tag of an unexpected type: a non-compound root
// tag, or a list element whose type does not match the list's element type.
type WrongTagError struct {
	Expected format.TagType
	Actual   format.TagType
}

func (e *WrongTagError) Error() string {
	return fmt.Sprintf("nbt: expected %s, but received %s instead", e.Expected.Describe(), e.Actual.Describe())
}

func (e *WrongTagError) Unwrap() error { return ErrFormat }

// UnknownTagTypeError reports a tag type code outside the closed set.
type UnknownTagTypeError struct {
	Type format.TagType
}

func (e *UnknownTagTypeError) Error() string {
	return fmt.Sprintf("nbt: unknown or unsupported tag type: %d", uint8(e.Type))
}

func (e *UnknownTagTypeError) Unwrap() error { return ErrFormat }

// DuplicateNameError reports a second tag with the same name parsed from or
// written to a single TAG_Compound.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("nbt: there is already a tag with the name %q in this TAG_Compound", e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrFormat }

// ConversionError reports a native value with no unambiguous tag type.
// Integers and floating-point values always require an explicit tag
// constructor because several tag types share one native type.
type ConversionError struct {
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("nbt: unable to convert value of type %T to a tag", e.Value)
}

func (e *ConversionError) Unwrap() error { return ErrConversion }

// LengthMismatchError reports a declared length that disagrees with the
// number of payload units actually written. Unit names the payload unit:
// "tags", "bytes", or "ints".
type LengthMismatchError struct {
	Unit     string
	Expected int64
	Actual   int64
}

func (e *LengthMismatchError) Error() string {
	if e.Actual > e.Expected {
		return fmt.Sprintf("nbt: more than %d %s were written", e.Expected, e.Unit)
	}

	return fmt.Sprintf("nbt: expected %d %s, but only %d %s were written", e.Expected, e.Unit, e.Actual, e.Unit)
}

func (e *LengthMismatchError) Unwrap() error { return ErrFormat }
