package result

// GenericError is a type-erased error value. It is usually obtained by
// erasing a TypedError via its Generic method, which preserves the code,
// location, and cause chain while dropping the code's static type; it can
// also be constructed directly from a bare numeric code. There is no
// conversion back to a TypedError.
//
// The zero value holds no error and reports IsError() == false.
type GenericError struct {
	baseError
}

// NewGeneric constructs a generic error for the given numeric code,
// recording the caller's file, line, and function. No domain string table
// is bound; Message falls back to the raw code.
func NewGeneric(code int) GenericError {
	return GenericError{baseError{
		rec: newRecord(code, captureFrame(1), nil, nil),
	}}
}

// NewGenericSkip is like NewGeneric but attributes the location skip
// frames further up the call stack.
func NewGenericSkip(skip int, code int) GenericError {
	return GenericError{baseError{
		rec: newRecord(code, captureFrame(skip+1), nil, nil),
	}}
}

// WrapGeneric constructs a generic error for the given numeric code,
// caused by an existing error of any domain.
func WrapGeneric(code int, cause AnyError) GenericError {
	return GenericError{baseError{
		rec: newRecord(code, captureFrame(1), cause.Record(), nil),
	}}
}

// Code returns the numeric error code, or 0 when no error is held.
func (e GenericError) Code() int {
	return e.RawCode()
}
