package chat

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gorm.io/datatypes"
)

// wireJSON is the shared serialization engine. The standard-library
// compatible config sorts object keys, which keeps encodings canonical and
// makes them usable for value comparison.
var wireJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// asNumber coerces the numeric shapes a JSON-compatible map can carry into a
// float64. Parsed JSON yields float64, but caller-built maps may hold any Go
// integer kind or a json.Number.
func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// requireString reads a required string field.
func requireString(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &MalformedFieldError{Field: key, Value: raw}
	}
	return s, nil
}

// optionalString reads an optional string field; absent and null both yield
// nil.
func optionalString(m map[string]any, key string) (*string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &MalformedFieldError{Field: key, Value: raw}
	}
	return &s, nil
}

// requireSize reads a required byte-size field. Wire data may carry it as a
// floating-point number; it is rounded half away from zero, never truncated.
func requireSize(m map[string]any, key string) (int64, error) {
	raw, ok := m[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	f, ok := asNumber(raw)
	if !ok {
		return 0, &MalformedFieldError{Field: key, Value: raw}
	}
	return int64(math.Round(f)), nil
}

// optionalFloat reads an optional floating-point field; absent and null both
// yield nil.
func optionalFloat(m map[string]any, key string) (*float64, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := asNumber(raw)
	if !ok {
		return nil, &MalformedFieldError{Field: key, Value: raw}
	}
	return &f, nil
}

// requireMillis reads a required duration field carried as an integer count
// of milliseconds. A fractional count has no faithful duration value and is
// rejected as malformed.
func requireMillis(m map[string]any, key string) (time.Duration, error) {
	raw, ok := m[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	f, ok := asNumber(raw)
	if !ok || f != math.Trunc(f) {
		return 0, &MalformedFieldError{Field: key, Value: raw}
	}
	return time.Duration(int64(f)) * time.Millisecond, nil
}

// optionalSeconds reads an optional integer field counted in seconds.
func optionalSeconds(m map[string]any, key string) (*int64, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := asNumber(raw)
	if !ok || f != math.Trunc(f) {
		return nil, &MalformedFieldError{Field: key, Value: raw}
	}
	sec := int64(f)
	return &sec, nil
}

// metadataField reads the free-form metadata bag. The map is taken by
// reference: decode does not copy, mirroring encode, and merge is the only
// operation that ever builds a fresh bag.
func metadataField(m map[string]any) (datatypes.JSONMap, error) {
	raw, ok := m["metadata"]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case map[string]any:
		return datatypes.JSONMap(v), nil
	case datatypes.JSONMap:
		return v, nil
	default:
		return nil, &MalformedFieldError{Field: "metadata", Value: raw}
	}
}

// statusField resolves the nullable status name; null and absent both yield
// the unset status.
func statusField(m map[string]any) (Status, error) {
	raw, ok := m["status"]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &MalformedFieldError{Field: "status", Value: raw}
	}
	return ParseStatus(s)
}

// waveFormField reads the optional decibel sequence of an audio message. No
// range validation happens here; the [0,120] contract belongs to callers.
func waveFormField(m map[string]any) ([]float64, error) {
	raw, ok := m["waveForm"]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case []float64:
		return v, nil
	case []any:
		out := make([]float64, len(v))
		for i, elem := range v {
			f, ok := asNumber(elem)
			if !ok {
				return nil, &MalformedFieldError{Field: "waveForm", Value: elem}
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, &MalformedFieldError{Field: "waveForm", Value: raw}
	}
}

// jsonEqual compares two values through their canonical JSON encoding, so
// maps compare by value regardless of insertion order and 1 equals 1.0 the
// way JSON numbers do.
func jsonEqual(a, b any) bool {
	ra, errA := wireJSON.Marshal(a)
	rb, errB := wireJSON.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(ra, rb)
}

func strPtrEqual(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}
