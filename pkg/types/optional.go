package types

import "encoding/json"

// Optional carries a request field that may be left out of the wire payload.
//
// The zero value is unset. Defaulted holds the documented default the API
// applies on its own; it reads like a set value but is never serialized.
// Explicit values are always serialized. Fields using Optional must be tagged
// `json:",omitzero"`.
type Optional[T comparable] struct {
	value    T
	resolved bool
	explicit bool
}

// Some returns an explicitly set value.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, resolved: true, explicit: true}
}

// Defaulted returns a resolved default that stays off the wire.
func Defaulted[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, resolved: true}
}

// Value returns the resolved value, or the zero T when unset.
func (o Optional[T]) Value() T {
	return o.value
}

// Get returns the value and whether it was resolved.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.resolved
}

// IsSet reports whether the caller supplied the value explicitly.
func (o Optional[T]) IsSet() bool {
	return o.explicit
}

// IsDefault reports whether the value is a resolved default.
func (o Optional[T]) IsDefault() bool {
	return o.resolved && !o.explicit
}

// IsZero is consulted by omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.explicit
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
