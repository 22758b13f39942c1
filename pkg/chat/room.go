package chat

import (
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

// RoomType discriminates how a conversation is organized.
type RoomType string

const (
	RoomChannel RoomType = "channel"
	RoomDirect  RoomType = "direct"
	RoomGroup   RoomType = "group"
)

// ParseRoomType resolves a raw room-type name.
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomChannel, RoomDirect, RoomGroup:
		return RoomType(s), nil
	default:
		return "", &UnrecognizedTypeError{Tag: s}
	}
}

// Room is a conversation: its participants plus the most recent messages a
// listing needs. LastMessages decodes through the message union, so a room
// map is the one wire shape that nests every other shape in this package.
type Room struct {
	ID           string `validate:"required"`
	ImageURL     *string
	LastMessages []Message
	Metadata     datatypes.JSONMap
	Name         *string
	Type         RoomType `validate:"required,oneof=channel direct group"`
	Users        []User
}

// RoomFromMap decodes a room from its wire map, including the nested user
// and message sequences.
func RoomFromMap(m map[string]any) (Room, error) {
	id, err := requireString(m, "id")
	if err != nil {
		return Room{}, err
	}
	imageURL, err := optionalString(m, "imageUrl")
	if err != nil {
		return Room{}, err
	}
	lastMessages, err := messagesField(m, "lastMessages")
	if err != nil {
		return Room{}, err
	}
	metadata, err := metadataField(m)
	if err != nil {
		return Room{}, err
	}
	name, err := optionalString(m, "name")
	if err != nil {
		return Room{}, err
	}
	roomType, err := roomTypeField(m)
	if err != nil {
		return Room{}, err
	}
	users, err := usersField(m, "users")
	if err != nil {
		return Room{}, err
	}
	return Room{
		ID:           id,
		ImageURL:     imageURL,
		LastMessages: lastMessages,
		Metadata:     metadata,
		Name:         name,
		Type:         roomType,
		Users:        users,
	}, nil
}

func roomTypeField(m map[string]any) (RoomType, error) {
	raw, ok := m["type"]
	if !ok || raw == nil {
		return "", &UnrecognizedTypeError{}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &UnrecognizedTypeError{}
	}
	return ParseRoomType(s)
}

func messagesField(m map[string]any, key string) ([]Message, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil, &MalformedFieldError{Field: key, Value: raw}
	}
	out := make([]Message, len(seq))
	for i, elem := range seq {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, &MalformedFieldError{Field: key, Value: elem}
		}
		msg, err := FromMap(obj)
		if err != nil {
			return nil, err
		}
		out[i] = msg
	}
	return out, nil
}

func usersField(m map[string]any, key string) ([]User, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil, &MalformedFieldError{Field: key, Value: raw}
	}
	out := make([]User, len(seq))
	for i, elem := range seq {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, &MalformedFieldError{Field: key, Value: elem}
		}
		user, err := UserFromMap(obj)
		if err != nil {
			return nil, err
		}
		out[i] = user
	}
	return out, nil
}

func (v Room) ToMap() map[string]any {
	out := map[string]any{
		"id":           v.ID,
		"imageUrl":     nil,
		"lastMessages": nil,
		"metadata":     nil,
		"name":         nil,
		"type":         string(v.Type),
		"users":        nil,
	}
	if v.ImageURL != nil {
		out["imageUrl"] = *v.ImageURL
	}
	if v.LastMessages != nil {
		out["lastMessages"] = lo.Map(v.LastMessages, func(msg Message, _ int) any { return msg.ToMap() })
	}
	if v.Metadata != nil {
		out["metadata"] = map[string]any(v.Metadata)
	}
	if v.Name != nil {
		out["name"] = *v.Name
	}
	if v.Users != nil {
		out["users"] = lo.Map(v.Users, func(u User, _ int) any { return u.ToMap() })
	}
	return out
}

func (v Room) MarshalJSON() ([]byte, error) {
	return wireJSON.Marshal(v.ToMap())
}

// CopyWith returns a copy with the given overrides applied. Rooms carry no
// status or preview, so only the metadata options have an effect.
func (v Room) CopyWith(opts ...CopyOption) Room {
	p := makePatch(opts)
	next := v
	next.Metadata = p.mergeMetadata(v.Metadata)
	return next
}

func (v Room) Equal(other Room) bool {
	if v.ID != other.ID ||
		!strPtrEqual(v.ImageURL, other.ImageURL) ||
		!metadataEqual(v.Metadata, other.Metadata) ||
		!strPtrEqual(v.Name, other.Name) ||
		v.Type != other.Type {
		return false
	}
	if (v.LastMessages == nil) != (other.LastMessages == nil) ||
		len(v.LastMessages) != len(other.LastMessages) {
		return false
	}
	for i := range v.LastMessages {
		if !Equal(v.LastMessages[i], other.LastMessages[i]) {
			return false
		}
	}
	if (v.Users == nil) != (other.Users == nil) || len(v.Users) != len(other.Users) {
		return false
	}
	for i := range v.Users {
		if !v.Users[i].Equal(other.Users[i]) {
			return false
		}
	}
	return true
}

func (v Room) DisplayText() string {
	if v.Type == RoomDirect {
		return "DM"
	}
	if v.Name != nil {
		return *v.Name
	}
	return v.ID
}
