// Package optional distinguishes a JSON key that was omitted from one that was
// sent as null and from one that carries a value.
package optional

import (
	"bytes"
	"encoding/json"
)

var null = []byte("null")

// Field is the zero value when the key was absent from the payload.
type Field[T any] struct {
	value T
	set   bool
	null  bool
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the key was present, with a value or null.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the key was present and null.
func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// Get returns the value and true when the field carries one.
func (f Field[T]) Get() (T, bool) {
	if !f.set || f.null {
		var zero T

		return zero, false
	}

	return f.value, true
}

// Ptr returns a pointer to a copy of the value, or nil when there is none.
func (f Field[T]) Ptr() *T {
	v, ok := f.Get()
	if !ok {
		return nil
	}

	return &v
}

// ValidationValue exposes the carried value to the validator as a *T. Absent
// and null fields yield a nil *T so that omitempty rules skip them, while a
// present zero value is still validated.
func (f Field[T]) ValidationValue() any {
	return f.Ptr()
}

// UnmarshalJSON is only invoked when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true

	if bytes.Equal(bytes.TrimSpace(data), null) {
		var zero T

		f.value = zero
		f.null = true

		return nil
	}

	f.null = false

	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	v, ok := f.Get()
	if !ok {
		return null, nil
	}

	return json.Marshal(v)
}
