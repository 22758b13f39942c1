package chat

import "fmt"

// UnrecognizedTypeError is returned when a map carries no usable type tag,
// or a tag outside the closed set the decoder knows. Room decoding reuses it
// for the room-type tag.
type UnrecognizedTypeError struct {
	Tag string
}

func (e *UnrecognizedTypeError) Error() string {
	if e.Tag == "" {
		return "chat: missing type tag"
	}
	return fmt.Sprintf("chat: unrecognized type tag %q", e.Tag)
}

// MissingFieldError is returned when a required key is absent from a map.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("chat: required field %q is missing", e.Field)
}

// MalformedFieldError is returned when a key is present but its value cannot
// be converted to the shape the field requires.
type MalformedFieldError struct {
	Field string
	Value any
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("chat: field %q cannot be read from %T (%v)", e.Field, e.Value, e.Value)
}

// UnknownStatusError is returned when a status string is none of the four
// recognized names.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("chat: unknown status name %q", e.Value)
}
