package result

// TypedError is a compile-time-typed error of one domain: its code is
// always a value of the domain's enumeration C. The zero value holds no
// error and reports IsError() == false.
//
// TypedError values are cheap to copy; copies share one immutable record.
type TypedError[C Code] struct {
	baseError
}

// NewError constructs a typed error for the given code, recording the
// caller's file, line, and function.
func NewError[C Code](code C) TypedError[C] {
	return TypedError[C]{baseError{
		rec: newRecord(int(code), captureFrame(1), nil, metaForCode[C]()),
	}}
}

// NewErrorSkip is like NewError but attributes the location skip frames
// further up the call stack. A domain-specific helper constructor passes 1
// so that errors point at its own callers.
func NewErrorSkip[C Code](skip int, code C) TypedError[C] {
	return TypedError[C]{baseError{
		rec: newRecord(int(code), captureFrame(skip+1), nil, metaForCode[C]()),
	}}
}

// WrapError constructs a typed error for the given code, caused by an
// existing error of any domain. The cause's record chain is linked, not
// copied, so the full chain stays reachable through Stack. Wrapping an
// empty cause records no cause at all.
func WrapError[C Code](code C, cause AnyError) TypedError[C] {
	return TypedError[C]{baseError{
		rec: newRecord(int(code), captureFrame(1), cause.Record(), metaForCode[C]()),
	}}
}

// WrapErrorSkip is like WrapError but attributes the location skip frames
// further up the call stack.
func WrapErrorSkip[C Code](skip int, code C, cause AnyError) TypedError[C] {
	return TypedError[C]{baseError{
		rec: newRecord(int(code), captureFrame(skip+1), cause.Record(), metaForCode[C]()),
	}}
}

// Code returns the error code as a value of the domain's enumeration.
// The zero value of C is returned when no error is held.
func (e TypedError[C]) Code() C {
	return C(e.RawCode())
}
