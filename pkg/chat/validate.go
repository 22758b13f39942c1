package chat

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs the shape rules declared on this package's types over a
// message, partial, user or room value: required identity and payload
// strings, non-negative sizes and lengths, waveform levels in [0,120],
// status and role names in their closed sets. Decoding never validates;
// this is an opt-in guard for hand-constructed values before they go out.
func Validate(v any) error {
	return validate.Struct(v)
}
