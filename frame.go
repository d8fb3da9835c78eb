package result

import "runtime"

// Frame records where an error was created: the enclosing function,
// the source file, and the line of the constructing call.
type Frame struct {
	Func string
	File string
	Line int
}

// IsZero reports whether the frame carries no location information.
func (f Frame) IsZero() bool {
	return f == Frame{}
}

// captureFrame returns the call site skip frames above the caller of
// captureFrame itself. Every exported constructor calls this directly from
// its own body, so the recorded location is always the constructor's call
// site, never a shared helper. Helper constructors in user code thread an
// extra skip through the *Skip constructor variants.
func captureFrame(skip int) Frame {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Frame{}
	}
	f := Frame{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.Func = fn.Name()
	}
	return f
}
