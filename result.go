package result

// Result holds either a success value of type T or a truthy error of type
// E, never both. E is one of the wrapper types of this package, typically
// GenericError for functions that report failures from heterogeneous
// domains, or a TypedError instantiation for a single domain.
//
// Results are transient stack values: produce one, consume it. A Result
// that is neither inspected nor passed to Try must not be dropped silently;
// for void results, Ignore marks a deliberate discard. Go has no
// must-use attribute, so this is a convention enforced in review and by
// unused-result linters, not by the compiler.
//
// The zero value of Result is a successful result holding T's zero value.
type Result[T any, E AnyError] struct {
	value T
	err   E
}

// Ok returns a successful Result holding value.
func Ok[T any, E AnyError](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

// Err returns a failed Result holding err.
// Constructing a Result from an error that reports IsError() == false is a
// programming error and panics.
func Err[T any, E AnyError](err E) Result[T, E] {
	if !err.IsError() {
		panic("result: Err called with a non-error value")
	}
	return Result[T, E]{err: err}
}

// OK reports whether a success value is held.
func (r Result[T, E]) OK() bool {
	return !r.err.IsError()
}

// Value returns the held success value.
// Calling Value on a failed Result is a programming error and panics.
func (r Result[T, E]) Value() T {
	if !r.OK() {
		panic("result: Value called on a failed result: " + r.err.Error())
	}
	return r.value
}

// Ptr returns a pointer to the held success value for in-place access.
// Calling Ptr on a failed Result is a programming error and panics.
func (r *Result[T, E]) Ptr() *T {
	if !r.OK() {
		panic("result: Ptr called on a failed result: " + r.err.Error())
	}
	return &r.value
}

// ValueOr returns the held success value, or fallback when the Result is
// failed. It never panics.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.OK() {
		return r.value
	}
	return fallback
}

// Error returns the held error. When the Result is successful it returns
// the zero value of E, which reports IsError() == false, so callers may
// always inspect the error without branching first.
func (r Result[T, E]) Error() E {
	return r.err
}

// Void is the value-less Result: it only tracks whether an operation
// succeeded or which error it failed with.
type Void[E AnyError] struct {
	err E
}

// Success returns the canonical "it worked" Void result.
func Success[E AnyError]() Void[E] {
	return Void[E]{}
}

// Fail returns a failed Void result holding err.
// Like Err, it panics when err reports IsError() == false.
func Fail[E AnyError](err E) Void[E] {
	if !err.IsError() {
		panic("result: Fail called with a non-error value")
	}
	return Void[E]{err: err}
}

// OK reports whether the operation succeeded.
func (r Void[E]) OK() bool {
	return !r.err.IsError()
}

// Error returns the held error, or the zero value of E on success.
func (r Void[E]) Error() E {
	return r.err
}

// Ignore acknowledges that the caller deliberately does not care whether
// the operation failed, e.g. a best-effort flush. It inspects nothing and
// never alters control flow; its only purpose is to make intentional
// discards explicit and greppable.
func (r Void[E]) Ignore() {}
