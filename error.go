package result

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

type (
	// AnyError is the type-erased view shared by TypedError and
	// GenericError. It is also the constraint on Result's error parameter;
	// only the wrapper types of this package satisfy it.
	AnyError interface {
		error
		// IsError reports whether a non-success error is held.
		// The zero value of every wrapper reports false.
		IsError() bool
		// RawCode returns the numeric code, or 0 when no error is held.
		RawCode() int
		// Message resolves the outermost code to a human-readable string,
		// or "" when no error is held.
		Message() string
		// Frame returns the location where the outermost record was
		// constructed. It panics when no error record is held.
		Frame() Frame
		// Record returns the underlying record, or nil when none is held.
		Record() *Record
		// Stack walks the cause chain, outermost record first.
		Stack() iter.Seq[*Record]
		// Generic returns this error with its code type erased.
		Generic() GenericError

		sealed()
	}

	// causer is used by pkg/errors to extract the cause of an error.
	// See: https://github.com/golang/go/issues/31778
	causer interface {
		Cause() error
	}

	// baseError carries the behavior common to TypedError and GenericError.
	// The record is shared between copies of a wrapper; it is immutable, so
	// sharing is safe across goroutines.
	baseError struct {
		rec *Record
	}
)

var (
	_ AnyError      = TypedError[int]{}
	_ AnyError      = GenericError{}
	_ fmt.Formatter = TypedError[int]{}
	_ fmt.Formatter = GenericError{}
	_ causer        = TypedError[int]{}
	_ causer        = GenericError{}
)

// IsError reports whether a record with a non-success code is held.
func (e baseError) IsError() bool {
	return e.rec != nil && e.rec.code != 0
}

// RawCode returns the numeric code, or 0 when no record is held.
func (e baseError) RawCode() int {
	if e.rec == nil {
		return 0
	}
	return e.rec.code
}

// Record returns the underlying error record, or nil when none is held.
func (e baseError) Record() *Record {
	return e.rec
}

// Frame returns the location where the outermost record was constructed.
// Calling Frame on a wrapper that holds no record is a programming error
// and panics.
func (e baseError) Frame() Frame {
	if e.rec == nil {
		panic("result: location accessed on an empty error")
	}
	return e.rec.frame
}

// File returns the source file of the outermost record.
func (e baseError) File() string {
	return e.Frame().File
}

// Line returns the source line of the outermost record.
func (e baseError) Line() int {
	return e.Frame().Line
}

// Function returns the enclosing function of the outermost record.
func (e baseError) Function() string {
	return e.Frame().Func
}

// Message resolves the outermost record's code through its domain's string
// table, falling back to the raw numeric code. It returns "" when no record
// is held.
func (e baseError) Message() string {
	if e.rec == nil {
		return ""
	}
	return e.rec.message()
}

// Stack walks the cause chain, outermost record first. It yields nothing
// when no record is held.
func (e baseError) Stack() iter.Seq[*Record] {
	if e.rec == nil {
		return func(yield func(*Record) bool) {}
	}
	return e.rec.Stack()
}

// Generic returns this error with its code type erased. The record is
// shared, so the code, location, and cause chain are preserved exactly.
func (e baseError) Generic() GenericError {
	return GenericError{e}
}

// Error returns the messages of the whole cause chain joined with ": ",
// outermost first, the way wrapped errors conventionally read in Go.
func (e baseError) Error() string {
	if e.rec == nil {
		return "<no error>"
	}
	var b strings.Builder
	for rec := range e.rec.Stack() {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(rec.message())
	}
	return b.String()
}

// Unwrap returns the causing error as a GenericError, or nil when there is
// none, so errors.Is and errors.As observe the full chain.
func (e baseError) Unwrap() error {
	if e.rec == nil || e.rec.cause == nil {
		return nil
	}
	return GenericError{baseError{rec: e.rec.cause}}
}

// Cause returns the causing error, or nil when there is none.
func (e baseError) Cause() error {
	return e.Unwrap()
}

// Format implements fmt.Formatter. %s and %v print the chain message,
// %q quotes it, and %+v prints the full diagnostic trail: one line per
// record with its code, resolved message, and construction site.
func (e baseError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatTrail(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e baseError) formatTrail(w io.Writer) {
	if e.rec == nil {
		_, _ = io.WriteString(w, "<no error>")
		return
	}
	first := true
	for rec := range e.rec.Stack() {
		if !first {
			_, _ = io.WriteString(w, "\ncaused by: ")
		}
		first = false

		if m := rec.Meta(); m != nil {
			_, _ = fmt.Fprintf(w, "%s error %d (%s)", m.Name(), rec.Code(), rec.message())
		} else {
			_, _ = fmt.Fprintf(w, "error %d", rec.Code())
		}
		if f := rec.Frame(); !f.IsZero() {
			_, _ = fmt.Fprintf(w, " at %s:%d in %s", f.File, f.Line, f.Func)
		}
	}
}

func (e baseError) sealed() {}
