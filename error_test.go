package result_test

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"
	"testing"

	result "github.com/chen3feng/error-handling"
)

type lookupCode int

const (
	lookupOK lookupCode = iota
	lookupNotFound
	lookupDenied
)

type parseCode int

const (
	parseOK parseCode = iota
	parseInvalidFormat
	parseOutOfRange
)

type (
	lookupError = result.TypedError[lookupCode]
	parseError  = result.TypedError[parseCode]
)

func init() {
	result.RegisterMetaFunc("lookup", func(c lookupCode) string {
		switch c {
		case lookupNotFound:
			return "not found"
		case lookupDenied:
			return "denied"
		}
		return "unknown"
	})
	result.RegisterMetaFunc("parse", func(c parseCode) string {
		switch c {
		case parseInvalidFormat:
			return "invalid format"
		case parseOutOfRange:
			return "out of range"
		}
		return "unknown"
	})
}

func TestTypedError_Truthiness(t *testing.T) {
	t.Run("constructed error is truthy", func(t *testing.T) {
		err := result.NewError(lookupNotFound)

		if !err.IsError() {
			t.Error("want IsError() == true for a constructed error")
		}
	})

	t.Run("zero value is falsy", func(t *testing.T) {
		var err lookupError

		if err.IsError() {
			t.Error("want IsError() == false for the zero value")
		}
		if got := err.RawCode(); got != 0 {
			t.Errorf("want code 0, got %d", got)
		}
		if got := err.Message(); got != "" {
			t.Errorf("want empty message, got %q", got)
		}
	})

	t.Run("zero value location panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("want panic when reading location of an empty error")
			}
		}()
		var err lookupError
		_ = err.File()
	})
}

func TestTypedError_Code(t *testing.T) {
	err := result.NewError(parseOutOfRange)

	if got := err.Code(); got != parseOutOfRange {
		t.Errorf("want code %v, got %v", parseOutOfRange, got)
	}
	if got := err.RawCode(); got != int(parseOutOfRange) {
		t.Errorf("want raw code %d, got %d", int(parseOutOfRange), got)
	}
}

func TestTypedError_CallSite(t *testing.T) {
	err := result.NewError(lookupNotFound)

	if got := err.File(); !strings.Contains(got, "error_test.go") {
		t.Errorf("want file of the constructing call, got %q", got)
	}
	if got := err.Line(); got == 0 {
		t.Error("want non-zero line number")
	}
	if got := err.Function(); !strings.Contains(got, "TestTypedError_CallSite") {
		t.Errorf("want enclosing function name, got %q", got)
	}
}

// newLookupError stands in for a domain helper constructor; with Skip the
// recorded site must be the helper's caller, not the helper body.
func newLookupError(code lookupCode) lookupError {
	return result.NewErrorSkip(1, code)
}

func TestTypedError_CallSiteThroughHelper(t *testing.T) {
	err := newLookupError(lookupDenied)

	if got := err.Function(); !strings.Contains(got, "TestTypedError_CallSiteThroughHelper") {
		t.Errorf("want the helper's caller as the site, got %q", got)
	}
}

func TestTypedError_Message(t *testing.T) {
	t.Run("registered domain", func(t *testing.T) {
		err := result.NewError(lookupNotFound)

		if got, want := err.Message(), "not found"; got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
	})

	t.Run("unregistered domain falls back to the raw code", func(t *testing.T) {
		type bareCode int
		err := result.NewError(bareCode(42))

		if got, want := err.Message(), "42"; got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
	})
}

func TestTypedError_Wrap(t *testing.T) {
	cause := result.NewError(lookupNotFound)
	err := result.WrapError(parseInvalidFormat, cause)

	t.Run("cause is linked", func(t *testing.T) {
		rec := err.Record().Cause()
		if rec == nil {
			t.Fatal("want non-nil cause record")
		}
		if got, want := rec.Code(), int(lookupNotFound); got != want {
			t.Errorf("want cause code %d, got %d", want, got)
		}
		if got, want := rec.Frame(), cause.Frame(); got != want {
			t.Errorf("want cause frame %v, got %v", want, got)
		}
	})

	t.Run("outer location is the wrap site", func(t *testing.T) {
		if err.Line() == cause.Line() {
			t.Error("want the wrapping error to carry its own site")
		}
	})

	t.Run("wrapping an empty cause records no cause", func(t *testing.T) {
		var empty lookupError
		wrapped := result.WrapError(parseInvalidFormat, empty)

		if wrapped.Record().Cause() != nil {
			t.Error("want no cause record")
		}
	})
}

func TestTypedError_Stack(t *testing.T) {
	depths := []int{0, 1, 5}
	for _, depth := range depths {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			err := chainOfDepth(depth)

			var codes []int
			for rec := range err.Stack() {
				codes = append(codes, rec.Code())
			}
			if got, want := len(codes), depth+1; got != want {
				t.Fatalf("want %d records, got %d", want, got)
			}
			// Outermost first: the last-wrapped error leads the walk.
			for i, code := range codes {
				if want := depth - i + 1; code != want {
					t.Errorf("record %d: want code %d, got %d", i, want, code)
				}
			}
		})
	}

	t.Run("restartable", func(t *testing.T) {
		err := chainOfDepth(2)
		seq := err.Stack()

		first := countRecords(seq)
		second := countRecords(seq)
		if first != second {
			t.Errorf("want identical walks, got %d then %d", first, second)
		}
	})

	t.Run("empty error yields nothing", func(t *testing.T) {
		var err lookupError
		if got := countRecords(err.Stack()); got != 0 {
			t.Errorf("want 0 records, got %d", got)
		}
	})
}

// chainOfDepth builds a chain of depth+1 records with codes
// depth+1, depth, ..., 1 from the outside in.
func chainOfDepth(depth int) result.GenericError {
	err := result.NewGeneric(1)
	for i := 0; i < depth; i++ {
		err = result.WrapGeneric(i+2, err)
	}
	return err
}

func countRecords(seq iter.Seq[*result.Record]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func TestGenericError_Erasure(t *testing.T) {
	cause := result.NewError(lookupNotFound)
	typed := result.WrapError(parseInvalidFormat, cause)
	erased := typed.Generic()

	if got, want := erased.Code(), int(typed.Code()); got != want {
		t.Errorf("want code %d, got %d", want, got)
	}
	if got, want := erased.Frame(), typed.Frame(); got != want {
		t.Errorf("want frame %v, got %v", want, got)
	}
	if erased.Record() != typed.Record() {
		t.Error("want the record to be shared, not copied")
	}
	if got, want := erased.Message(), "invalid format"; got != want {
		t.Errorf("want message resolution to survive erasure, got %q", got)
	}
}

func TestError_StdlibInterop(t *testing.T) {
	cause := result.NewError(lookupNotFound)
	err := result.WrapError(parseInvalidFormat, cause)

	t.Run("error interface", func(t *testing.T) {
		var stdErr error = err
		if got, want := stdErr.Error(), "invalid format: not found"; got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("errors.As walks the chain", func(t *testing.T) {
		var g result.GenericError
		if !errors.As(error(err), &g) {
			t.Fatal("want errors.As to find the cause")
		}
		if got, want := g.Code(), int(lookupNotFound); got != want {
			t.Errorf("want cause code %d, got %d", want, got)
		}
	})
}

func TestError_Format(t *testing.T) {
	cause := result.NewError(lookupNotFound)
	err := result.WrapError(parseInvalidFormat, cause)

	t.Run("short form", func(t *testing.T) {
		if got, want := fmt.Sprintf("%v", err), "invalid format: not found"; got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("quoted", func(t *testing.T) {
		if got, want := fmt.Sprintf("%q", err), `"invalid format: not found"`; got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("trail", func(t *testing.T) {
		got := fmt.Sprintf("%+v", err)

		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("want 2 trail lines, got %d:\n%s", len(lines), got)
		}
		if !strings.HasPrefix(lines[0], "parse error 1 (invalid format) at ") {
			t.Errorf("unexpected outer line %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "caused by: lookup error 1 (not found) at ") {
			t.Errorf("unexpected cause line %q", lines[1])
		}
		if !strings.Contains(got, "error_test.go") {
			t.Errorf("want construction sites in the trail, got:\n%s", got)
		}
	})

	t.Run("empty error", func(t *testing.T) {
		var err lookupError
		if got, want := fmt.Sprintf("%+v", err), "<no error>"; got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})
}

func TestError_ConcurrentReads(t *testing.T) {
	err := result.WrapError(parseInvalidFormat, result.NewError(lookupNotFound))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = err.Message()
				_ = countRecords(err.Stack())
				_ = err.Generic()
			}
		}()
	}
	wg.Wait()
}
