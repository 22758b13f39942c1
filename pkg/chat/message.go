// Package chat models the messages exchanged in a conversation as a closed
// union of variants (file, image, text, audio, video) with a lossless
// JSON-map codec, value equality, and a copy-on-write merge. Everything is a
// plain value; decoding is the only operation that can fail.
package chat

import (
	"gorm.io/datatypes"
)

// MessageType discriminates the concrete variant behind a Message.
type MessageType string

const (
	TypeAudio MessageType = "audio"
	TypeFile  MessageType = "file"
	TypeImage MessageType = "image"
	TypeText  MessageType = "text"
	TypeVideo MessageType = "video"
)

// Message is the closed message union. The five variants in this package are
// the only implementations; they satisfy it by value through the embedded
// BaseMessage.
type Message interface {
	// Type returns the variant tag serialized into the map form.
	Type() MessageType
	// Base returns the fields shared by every variant.
	Base() BaseMessage
	// ToMap encodes the message into its wire map. Optional fields that are
	// unset appear as explicit nulls so the shape is stable.
	ToMap() map[string]any
	// CopyWith returns a copy with the given overrides applied. Identity and
	// payload fields always carry over unchanged.
	CopyWith(opts ...CopyOption) Message
	// Equal reports whether the other message is the same variant with equal
	// field values.
	Equal(other Message) bool
	// DisplayText returns a short human-readable summary for room listings
	// and logs.
	DisplayText() string

	message()
}

// BaseMessage carries the fields common to all variants. Concrete variants
// embed it; it is not a Message by itself.
type BaseMessage struct {
	AuthorID  string `validate:"required"`
	ID        string `validate:"required"`
	Metadata  datatypes.JSONMap
	Status    Status `validate:"omitempty,oneof=delivered error read sending"`
	Timestamp *int64
}

// Base implements the shared-field accessor for every embedding variant.
func (b BaseMessage) Base() BaseMessage { return b }

func (BaseMessage) message() {}

// baseFromMap reads the common fields of any variant map.
func baseFromMap(m map[string]any) (BaseMessage, error) {
	authorID, err := requireString(m, "authorId")
	if err != nil {
		return BaseMessage{}, err
	}
	id, err := requireString(m, "id")
	if err != nil {
		return BaseMessage{}, err
	}
	metadata, err := metadataField(m)
	if err != nil {
		return BaseMessage{}, err
	}
	status, err := statusField(m)
	if err != nil {
		return BaseMessage{}, err
	}
	timestamp, err := optionalSeconds(m, "timestamp")
	if err != nil {
		return BaseMessage{}, err
	}
	return BaseMessage{
		AuthorID:  authorID,
		ID:        id,
		Metadata:  metadata,
		Status:    status,
		Timestamp: timestamp,
	}, nil
}

// baseMap emits the common keys with the given variant tag. Unset optionals
// become explicit nulls.
func (b BaseMessage) baseMap(tag MessageType) map[string]any {
	out := map[string]any{
		"authorId":  b.AuthorID,
		"id":        b.ID,
		"metadata":  nil,
		"status":    nil,
		"timestamp": nil,
		"type":      string(tag),
	}
	if b.Metadata != nil {
		out["metadata"] = map[string]any(b.Metadata)
	}
	if b.Status != "" {
		out["status"] = string(b.Status)
	}
	if b.Timestamp != nil {
		out["timestamp"] = *b.Timestamp
	}
	return out
}

func (b BaseMessage) baseEqual(other BaseMessage) bool {
	return b.AuthorID == other.AuthorID &&
		b.ID == other.ID &&
		b.Status == other.Status &&
		int64PtrEqual(b.Timestamp, other.Timestamp) &&
		metadataEqual(b.Metadata, other.Metadata)
}

// metadataEqual compares two bags with JSON value semantics, where 1 and 1.0
// are the same number and key order never matters. A nil bag only equals
// another nil bag.
func metadataEqual(a, b datatypes.JSONMap) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || jsonEqual(a, b)
}

// FromMap decodes a wire map into the matching variant. The type tag picks
// the decoder; a map without a usable tag never yields a partially built
// message.
func FromMap(m map[string]any) (Message, error) {
	raw, ok := m["type"]
	if !ok || raw == nil {
		return nil, &UnrecognizedTypeError{}
	}
	tag, ok := raw.(string)
	if !ok {
		return nil, &UnrecognizedTypeError{}
	}
	switch MessageType(tag) {
	case TypeAudio:
		return AudioMessageFromMap(m)
	case TypeFile:
		return FileMessageFromMap(m)
	case TypeImage:
		return ImageMessageFromMap(m)
	case TypeText:
		return TextMessageFromMap(m)
	case TypeVideo:
		return VideoMessageFromMap(m)
	default:
		return nil, &UnrecognizedTypeError{Tag: tag}
	}
}

// Equal reports whether two messages are the same variant with equal field
// values. Either side may be nil; two nils are equal.
func Equal(a, b Message) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Variants satisfy Message by value, never by pointer.
var (
	_ Message = AudioMessage{}
	_ Message = FileMessage{}
	_ Message = ImageMessage{}
	_ Message = TextMessage{}
	_ Message = VideoMessage{}
)
