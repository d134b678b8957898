package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeKey string

type fakeThing struct {
	Name string
}

type fakeGetter struct {
	things map[fakeKey]fakeThing
}

func (f *fakeGetter) Get(k fakeKey) (fakeThing, error) {
	t, ok := f.things[k]
	if !ok {
		return fakeThing{}, errors.New("not found")
	}
	return t, nil
}

func TestReferenceUpdater(t *testing.T) {
	thing := fakeThing{Name: "first"}
	updater := &ReferenceUpdater[fakeKey, fakeThing]{
		Getter: &fakeGetter{things: map[fakeKey]fakeThing{"a": thing}},
		Name:   "thing",
		Field:  "ThingKey",
	}

	t.Run("add referenced value alongside key", func(t *testing.T) {
		got := updater.UpdateArgs("key", fakeKey("a"))

		want := []any{"key", fakeKey("a"), "thing", thing}
		assert.Equal(t, want, got)
	})

	t.Run("add value when referenced from struct with pointer field", func(t *testing.T) {
		type logMsgArg struct {
			ThingKey *fakeKey
		}
		k := fakeKey("a")

		args := []any{"arg1", logMsgArg{ThingKey: &k}}
		got := updater.UpdateArgs(args...)

		want := append(args, "thing", thing)
		assert.Equal(t, want, got)
	})

	t.Run("add value when referenced from struct with non-pointer field", func(t *testing.T) {
		type logMsgArg struct {
			ThingKey fakeKey
		}

		args := []any{"arg1", logMsgArg{ThingKey: "a"}}
		got := updater.UpdateArgs(args...)

		want := append(args, "thing", thing)
		assert.Equal(t, want, got)
	})

	t.Run("handle nil pointer from struct", func(t *testing.T) {
		type logMsgArg struct {
			ThingKey *fakeKey
		}

		args := []any{"arg1", logMsgArg{ThingKey: nil}}
		got := updater.UpdateArgs(args...)

		assert.Equal(t, args, got)
	})

	t.Run("unknown key", func(t *testing.T) {
		args := []any{"key", fakeKey("z")}
		got := updater.UpdateArgs(args...)

		assert.Equal(t, args, got)
	})
}
