// Package preview carries the link preview metadata a client may attach to a
// text message. It is opaque to the message model beyond its map codec.
package preview

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// PreviewData describes a previewed link: the page title and description,
// and optionally a representative image. Every field is optional; a zero
// PreviewData is a preview that resolved to nothing.
type PreviewData struct {
	Description *string
	Image       *Image
	Link        *string
	Title       *string
}

// Image is the representative picture of a previewed link. All three fields
// are required whenever an image is present.
type Image struct {
	Height float64
	URL    string
	Width  float64
}

// DecodeError reports a preview field that could not be read from map form.
type DecodeError struct {
	Field string
	Value any
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("preview: cannot read field %q from %T", e.Field, e.Value)
}

// FromMap rebuilds a PreviewData from its JSON-compatible map form.
func FromMap(m map[string]any) (PreviewData, error) {
	var data PreviewData
	var err error
	if data.Description, err = optString(m, "description"); err != nil {
		return PreviewData{}, err
	}
	if data.Link, err = optString(m, "link"); err != nil {
		return PreviewData{}, err
	}
	if data.Title, err = optString(m, "title"); err != nil {
		return PreviewData{}, err
	}
	raw, ok := m["image"]
	if !ok || raw == nil {
		return data, nil
	}
	img, ok := raw.(map[string]any)
	if !ok {
		return PreviewData{}, &DecodeError{Field: "image", Value: raw}
	}
	image, err := imageFromMap(img)
	if err != nil {
		return PreviewData{}, err
	}
	data.Image = &image
	return data, nil
}

func imageFromMap(m map[string]any) (Image, error) {
	var img Image
	var err error
	if img.Height, err = number("image.height", m["height"]); err != nil {
		return Image{}, err
	}
	if img.Width, err = number("image.width", m["width"]); err != nil {
		return Image{}, err
	}
	url, ok := m["url"].(string)
	if !ok {
		return Image{}, &DecodeError{Field: "image.url", Value: m["url"]}
	}
	img.URL = url
	return img, nil
}

// ToMap renders the preview in its JSON-compatible map form. Absent fields
// are emitted as explicit nulls so the shape round-trips unchanged.
func (p PreviewData) ToMap() map[string]any {
	out := map[string]any{
		"description": nil,
		"image":       nil,
		"link":        nil,
		"title":       nil,
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.Link != nil {
		out["link"] = *p.Link
	}
	if p.Title != nil {
		out["title"] = *p.Title
	}
	if p.Image != nil {
		out["image"] = map[string]any{
			"height": p.Image.Height,
			"url":    p.Image.URL,
			"width":  p.Image.Width,
		}
	}
	return out
}

// MarshalJSON serializes the preview in wire form.
func (p PreviewData) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p.ToMap())
}

// Equal reports whether two previews carry the same values.
func (p PreviewData) Equal(o PreviewData) bool {
	if !strPtrEqual(p.Description, o.Description) ||
		!strPtrEqual(p.Link, o.Link) ||
		!strPtrEqual(p.Title, o.Title) {
		return false
	}
	if (p.Image == nil) != (o.Image == nil) {
		return false
	}
	return p.Image == nil || *p.Image == *o.Image
}

func strPtrEqual(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func optString(m map[string]any, key string) (*string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &DecodeError{Field: key, Value: raw}
	}
	return &s, nil
}

func number(field string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &DecodeError{Field: field, Value: raw}
		}
		return f, nil
	default:
		return 0, &DecodeError{Field: field, Value: raw}
	}
}
