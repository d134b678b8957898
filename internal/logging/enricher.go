package logging

import (
	"reflect"
)

// enricher enriches a log record with further meaningful attributes that aren't
// readily available to the caller.
type enricher struct {
	updaters []ArgsUpdater
}

func (e *enricher) AddArgsUpdater(updater ArgsUpdater) {
	e.updaters = append(e.updaters, updater)
}

func (e *enricher) enrich(args ...any) []any {
	for _, en := range e.updaters {
		args = en.UpdateArgs(args...)
	}
	return args
}

// ArgsUpdater updates a log message's arguments.
type ArgsUpdater interface {
	UpdateArgs(args ...any) []any
}

// ReferenceUpdater checks log arguments for references to T via its key K,
// either directly or via a struct field, and adds T to the log arguments
// accordingly.
type ReferenceUpdater[K comparable, T any] struct {
	Getter[K, T]

	Name  string
	Field string
}

type Getter[K comparable, T any] interface {
	Get(K) (T, error)
}

func (e *ReferenceUpdater[K, T]) UpdateArgs(args ...any) []any {
	for _, arg := range args {
		// An argument of type K is kept as is, and the value it refers to is
		// added alongside it.
		if k, ok := arg.(K); ok {
			t, err := e.Get(k)
			if err != nil {
				continue
			}
			return append(args, e.Name, t)
		}
		// Where an argument is a struct (or a pointer to a struct), check if it
		// has a field matching the expected field name, with a corresponding
		// value of type K, and if so, add the value it refers to.
		v := reflect.Indirect(reflect.ValueOf(arg))
		if v.Kind() != reflect.Struct {
			continue
		}
		f := reflect.Indirect(v.FieldByName(e.Field))
		if !f.IsValid() {
			continue
		}
		k, ok := f.Interface().(K)
		if !ok {
			continue
		}
		t, err := e.Get(k)
		if err != nil {
			continue
		}
		return append(args, e.Name, t)
	}
	return args
}
