package result

import (
	"fmt"
	"reflect"
	"sync"
)

type (
	// Code constrains the error code enumerations that TypedError accepts.
	// A domain defines its codes as a named integer type; the zero value of
	// every domain means "no error".
	Code interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
			~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}

	// Meta is a string table for one error domain: a human-readable domain
	// name and a code-to-string resolution used by Message and by
	// diagnostic formatting.
	Meta interface {
		// Name returns the domain name, e.g. "errno".
		Name() string
		// String returns the human-readable text for a code of this domain.
		String(code int) string
	}

	metaFunc[C Code] struct {
		name string
		fn   func(C) string
	}

	stringerMeta[C Code] struct {
		name string
	}
)

var (
	_ Meta = metaFunc[int]{}
	_ Meta = stringerMeta[int]{}

	metaMu sync.RWMutex
	metas  = map[reflect.Type]Meta{}
)

// RegisterMeta registers the string table for the error domain C.
// If the domain already has a table, the first registration wins.
// Registration is typically done from an init function or a package-level
// variable declaration of the domain package.
func RegisterMeta[C Code](m Meta) {
	t := reflect.TypeFor[C]()
	metaMu.Lock()
	defer metaMu.Unlock()
	if _, exists := metas[t]; exists {
		return
	}
	metas[t] = m
}

// RegisterMetaFunc registers a string table for the error domain C built
// from a domain name and a typed resolution function.
func RegisterMetaFunc[C Code](name string, fn func(C) string) {
	RegisterMeta[C](metaFunc[C]{name: name, fn: fn})
}

// MetaFor returns the registered string table for the error domain C.
func MetaFor[C Code]() (Meta, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	m, ok := metas[reflect.TypeFor[C]()]
	return m, ok
}

// metaForCode resolves the string table bound into records of domain C:
// the registered table if any, else the code type's own fmt.Stringer
// (stringer-generated enums resolve with no registration at all), else nil.
func metaForCode[C Code]() Meta {
	if m, ok := MetaFor[C](); ok {
		return m
	}
	var zero C
	if _, ok := any(zero).(fmt.Stringer); ok {
		return stringerMeta[C]{name: reflect.TypeFor[C]().Name()}
	}
	return nil
}

func (m metaFunc[C]) Name() string {
	return m.name
}

func (m metaFunc[C]) String(code int) string {
	return m.fn(C(code))
}

func (m stringerMeta[C]) Name() string {
	return m.name
}

func (m stringerMeta[C]) String(code int) string {
	return any(C(code)).(fmt.Stringer).String()
}
