// Package wire adapts the chat map codec to bytes: JSON in and out of the
// message union, plus a scanner for newline-delimited streams. It is the
// boundary a transport or fixture file consumes, not a transport itself.
package wire

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"git.solsynth.dev/hypernet/postcard/pkg/chat"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal renders a message in wire form.
func Marshal(msg chat.Message) ([]byte, error) {
	return json.Marshal(msg.ToMap())
}

// Unmarshal decodes a wire-form message, picking the variant by its type
// tag. Decode failures keep their typed errors from the chat package.
func Unmarshal(raw []byte) (chat.Message, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("wire: parse message: %w", err)
	}
	return chat.FromMap(m)
}

// MarshalUser renders a user in wire form.
func MarshalUser(u chat.User) ([]byte, error) {
	return json.Marshal(u.ToMap())
}

// UnmarshalUser decodes a wire-form user.
func UnmarshalUser(raw []byte) (chat.User, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return chat.User{}, fmt.Errorf("wire: parse user: %w", err)
	}
	return chat.UserFromMap(m)
}

// MarshalRoom renders a room in wire form, nested messages and users
// included.
func MarshalRoom(r chat.Room) ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// UnmarshalRoom decodes a wire-form room.
func UnmarshalRoom(raw []byte) (chat.Room, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return chat.Room{}, fmt.Errorf("wire: parse room: %w", err)
	}
	return chat.RoomFromMap(m)
}
