package result

import (
	"iter"
	"strconv"
)

// Record is the type-erased runtime representation of one error occurrence:
// a numeric code, the frame where it was constructed, and an optional link
// to the record of the error that caused it. Records are immutable after
// construction, so a record and its cause chain may be read from multiple
// goroutines without synchronization.
type Record struct {
	code  int
	frame Frame
	cause *Record
	meta  Meta
}

// NewRecord constructs a fresh record with no cause.
// A code of 0 conventionally means "no error"; the error wrappers never
// produce such a record, but diagnostic tooling building records directly
// is free to.
func NewRecord(code int, frame Frame) *Record {
	return newRecord(code, frame, nil, nil)
}

// WrapRecord constructs a record caused by another record. The cause chain
// is linked, not copied; the caller must not link a record as a cause of
// something that is, transitively, its own cause. Wrappers uphold this by
// always linking a freshly constructed record in front of the chain.
func WrapRecord(code int, frame Frame, cause *Record) *Record {
	return newRecord(code, frame, cause, nil)
}

func newRecord(code int, frame Frame, cause *Record, meta Meta) *Record {
	return &Record{
		code:  code,
		frame: frame,
		cause: cause,
		meta:  meta,
	}
}

// Code returns the numeric error code.
func (r *Record) Code() int {
	return r.code
}

// Frame returns the location where this record was constructed.
func (r *Record) Frame() Frame {
	return r.frame
}

// Cause returns the record of the causing error, or nil if there is none.
func (r *Record) Cause() *Record {
	return r.cause
}

// Stack returns the cause chain as a lazy sequence, outermost record first.
// The sequence is finite and may be ranged over any number of times.
func (r *Record) Stack() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for rec := r; rec != nil; rec = rec.cause {
			if !yield(rec) {
				return
			}
		}
	}
}

// Len returns the length of the cause chain, this record included.
func (r *Record) Len() int {
	n := 0
	for rec := r; rec != nil; rec = rec.cause {
		n++
	}
	return n
}

// Meta returns the string table bound to this record's error domain,
// or nil if the domain has none.
func (r *Record) Meta() Meta {
	return r.meta
}

// message resolves the code through the bound string table, falling back
// to the raw numeric code.
func (r *Record) message() string {
	if r.meta != nil {
		return r.meta.String(r.code)
	}
	return strconv.Itoa(r.code)
}
