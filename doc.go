/*
Package result is an explicit, type-safe error-propagation mechanism for
functions that can fail. A fallible function declares a Result return type
holding either its success value or an error; errors carry a numeric code,
the file, line, and function where they were constructed, and an optional
chain of causing errors. Nothing is thrown and no sentinel values are
overloaded: every fallible path is visible in the function's signature.

# Error domains

A domain defines its failure codes as a named integer type whose zero value
means "no error", and builds errors with the typed constructors. The call
site's location is captured automatically.

	type ParseCode int

	const (
		ParseOK ParseCode = iota
		ParseInvalidFormat
		ParseOutOfRange
	)

	type ParseError = result.TypedError[ParseCode]

	func parseInt(s string) result.Result[int, ParseError] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Err[int](result.NewError(ParseInvalidFormat))
		}
		return result.Ok[int, ParseError](n)
	}

A string table can be registered per domain so Message and the %+v trail
resolve codes to text; code types generated with stringer resolve without
any registration.

	result.RegisterMetaFunc("parse", func(c ParseCode) string {
		switch c {
		case ParseInvalidFormat:
			return "invalid format"
		case ParseOutOfRange:
			return "out of range"
		}
		return "unknown"
	})

# Propagation

Try unwraps a successful sub-result or aborts the enclosing function with
the sub-result's error; a deferred Catch turns that abort into the
function's own declared return value. An error propagates unchanged between
functions sharing its type, and erases into GenericError when the enclosing
function declares one. Crossing into a different typed domain requires
explicit wrapping with WrapError, which links the original error as the
cause of the new one.

	func readIntFile(name string) (res result.Result[int, result.GenericError]) {
		defer result.Catch(&res)
		f := result.Try(openFile(name))
		s := result.Try(f.Read())
		return result.Ok[int, result.GenericError](result.Try(parseInt(s)))
	}

Map and AndThen offer the same short-circuiting as chained combinators for
call sites that prefer not to defer a Catch.

# Diagnostics

An error prints its outer location and the full cause chain with %+v,
giving a deterministic root-cause trail without a stack trace:

	parse error 1 (invalid format) at /app/parse.go:21 in app.parseInt
	caused by: errno error 22 (invalid argument) at /app/file.go:9 in app.read

The wrappers also implement the standard error interface and Unwrap, so
errors.Is and errors.As traverse the chain, and structured-logging
adapters (see examples/zerolog and examples/zap) can emit the code,
origin, and causes as fields.

# Discarding results

A Result that is produced must be consumed. When a caller deliberately
does not care whether a void operation failed, it calls Ignore, which does
nothing but makes the discard explicit:

	flushAll().Ignore()
*/
package result
