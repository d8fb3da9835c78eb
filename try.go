package result

import "fmt"

// Try unwraps a successful Result so it can be used directly as a
// subexpression. On a failed Result it aborts the enclosing function,
// which must arrange for the propagated error to become its own return
// value with a deferred Catch:
//
//	func readIntFile(name string) (res result.Result[int, result.GenericError]) {
//		defer result.Catch(&res)
//		f := result.Try(openFile(name))
//		s := result.Try(f.Read())
//		return result.Ok[int, result.GenericError](result.Try(parseInt(s)))
//	}
//
// The failing sub-call's error travels to Catch as a panic with an internal
// sentinel; no code after the failing Try executes. Using Try in a function
// without a matching deferred Catch turns every failure into an uncaught
// panic.
func Try[T any, E AnyError](r Result[T, E]) T {
	if !r.OK() {
		panic(propagated{err: r.err})
	}
	return r.value
}

// TryVoid is Try for value-less results: it returns normally on success
// and aborts the enclosing function on failure.
func TryVoid[E AnyError](r Void[E]) {
	if !r.OK() {
		panic(propagated{err: r.err})
	}
}

// Catch converts an error propagated by Try into the enclosing function's
// own declared result. It must be deferred with a pointer to the named
// return value before the first Try.
//
// If the propagated error's type is exactly E it is stored as-is. If E is
// GenericError, any propagated error is erased into it. Propagating into a
// different typed domain is not performed silently; crossing a domain
// boundary requires the callee's error to be wrapped or erased explicitly,
// so Catch panics in that case. Panics that did not originate from Try are
// re-raised untouched.
func Catch[T any, E AnyError](res *Result[T, E]) {
	v := recover()
	if v == nil {
		return
	}
	*res = Result[T, E]{err: coerce[E](v)}
}

// CatchVoid is Catch for functions returning a Void result.
func CatchVoid[E AnyError](res *Void[E]) {
	v := recover()
	if v == nil {
		return
	}
	*res = Void[E]{err: coerce[E](v)}
}

type propagated struct {
	err AnyError
}

func coerce[E AnyError](v any) E {
	p, ok := v.(propagated)
	if !ok {
		panic(v)
	}
	if err, ok := p.err.(E); ok {
		return err
	}
	if err, ok := any(p.err.Generic()).(E); ok {
		return err
	}
	var zero E
	panic(fmt.Sprintf("result: cannot propagate %T into %T; wrap or erase it first", p.err, zero))
}

// Map transforms the success value of a Result, passing a failure through
// unchanged.
func Map[T, U any, E AnyError](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.OK() {
		return Result[U, E]{err: r.err}
	}
	return Ok[U, E](fn(r.value))
}

// AndThen chains a Result into another fallible operation, short-circuiting
// on failure. It is the combinator form of Try for call sites that prefer
// explicit chaining over a deferred Catch.
func AndThen[T, U any, E AnyError](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.OK() {
		return Result[U, E]{err: r.err}
	}
	return fn(r.value)
}

// MapError converts the error arm of a Result, typically to wrap a
// domain error or erase it at a domain boundary. A successful Result is
// passed through unchanged; fn is only called on failures and must return
// a truthy error.
func MapError[T any, E1, E2 AnyError](r Result[T, E1], fn func(E1) E2) Result[T, E2] {
	if r.OK() {
		return Result[T, E2]{value: r.value}
	}
	return Err[T](fn(r.err))
}
