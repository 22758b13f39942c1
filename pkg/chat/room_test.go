package chat

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"gorm.io/datatypes"
)

func sampleRoom() Room {
	return Room{
		ID:       "room-1",
		ImageURL: lo.ToPtr("https://files.example.com/room.png"),
		LastMessages: []Message{
			TextMessage{
				BaseMessage: BaseMessage{AuthorID: "user-1", ID: "msg-1", Status: StatusRead},
				Text:        "hello",
			},
			FileMessage{
				BaseMessage: BaseMessage{AuthorID: "user-2", ID: "msg-2"},
				FileName:    "report.pdf",
				Size:        2048,
				URI:         "https://files.example.com/report.pdf",
			},
		},
		Metadata: datatypes.JSONMap{"pinned": true},
		Name:     lo.ToPtr("general"),
		Type:     RoomGroup,
		Users: []User{
			{ID: "user-1", FirstName: lo.ToPtr("Ada")},
			{ID: "user-2"},
		},
	}
}

func TestRoomRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		room Room
	}{
		{name: "full", room: sampleRoom()},
		{name: "minimal", room: Room{ID: "room-1", Type: RoomDirect}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoomFromMap(tt.room.ToMap())
			if err != nil {
				t.Fatalf("RoomFromMap returned error: %v", err)
			}
			if !got.Equal(tt.room) {
				t.Fatalf("round trip = %#v, want %#v", got, tt.room)
			}
		})
	}
}

func TestRoomNestedDecode(t *testing.T) {
	const doc = `{
		"id": "room-1",
		"imageUrl": null,
		"lastMessages": [
			{"authorId": "user-1", "id": "msg-1", "text": "hello", "type": "text"},
			{"authorId": "user-2", "id": "msg-2", "length": 1500, "type": "audio",
			 "uri": "https://files.example.com/note.ogg"}
		],
		"metadata": null,
		"name": "general",
		"type": "group",
		"users": [{"id": "user-1"}]
	}`
	var m map[string]any
	if err := wireJSON.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	room, err := RoomFromMap(m)
	if err != nil {
		t.Fatalf("RoomFromMap returned error: %v", err)
	}
	if len(room.LastMessages) != 2 {
		t.Fatalf("LastMessages count = %d, want 2", len(room.LastMessages))
	}
	if room.LastMessages[0].Type() != TypeText || room.LastMessages[1].Type() != TypeAudio {
		t.Fatalf("nested variant tags = %q, %q", room.LastMessages[0].Type(), room.LastMessages[1].Type())
	}
	if len(room.Users) != 1 || room.Users[0].ID != "user-1" {
		t.Fatalf("Users = %#v", room.Users)
	}
}

func TestRoomDecodeErrors(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{"id": "room-1", "type": "group"}
	}

	m := base()
	delete(m, "type")
	_, err := RoomFromMap(m)
	var typeErr *UnrecognizedTypeError
	if !errors.As(err, &typeErr) || typeErr.Tag != "" {
		t.Fatalf("missing type error = %v, want *UnrecognizedTypeError", err)
	}

	m = base()
	m["type"] = "guild"
	_, err = RoomFromMap(m)
	if !errors.As(err, &typeErr) || typeErr.Tag != "guild" {
		t.Fatalf("unknown type error = %v, want *UnrecognizedTypeError{guild}", err)
	}

	m = base()
	m["lastMessages"] = []any{map[string]any{"type": "bogus"}}
	_, err = RoomFromMap(m)
	if !errors.As(err, &typeErr) || typeErr.Tag != "bogus" {
		t.Fatalf("nested message error = %v, want *UnrecognizedTypeError{bogus}", err)
	}

	m = base()
	m["lastMessages"] = []any{"not a map"}
	if _, err := RoomFromMap(m); !isMalformed(t, err, "lastMessages") {
		t.Fatalf("non-map element error = %v, want *MalformedFieldError", err)
	}

	m = base()
	m["users"] = "everyone"
	if _, err := RoomFromMap(m); !isMalformed(t, err, "users") {
		t.Fatalf("non-list users error = %v, want *MalformedFieldError", err)
	}

	m = base()
	m["users"] = []any{map[string]any{"firstName": "Ada"}}
	var missing *MissingFieldError
	if _, err := RoomFromMap(m); !errors.As(err, &missing) || missing.Field != "id" {
		t.Fatalf("nested user error = %v, want *MissingFieldError{id}", err)
	}
}

func TestRoomCopyWith(t *testing.T) {
	room := sampleRoom()
	merged := room.CopyWith(WithMetadata(datatypes.JSONMap{"muted": true}))
	if !metadataEqual(merged.Metadata, datatypes.JSONMap{"muted": true, "pinned": true}) {
		t.Fatalf("merged metadata = %v", merged.Metadata)
	}
	if !merged.CopyWith(ClearMetadata()).Equal(room.CopyWith(ClearMetadata())) {
		t.Fatalf("rooms differing only in cleared metadata compare unequal")
	}
	if len(merged.LastMessages) != len(room.LastMessages) || len(merged.Users) != len(room.Users) {
		t.Fatalf("merge touched nested sequences")
	}
}

func TestRoomDisplayText(t *testing.T) {
	tests := []struct {
		name string
		room Room
		want string
	}{
		{name: "direct", room: Room{ID: "room-1", Type: RoomDirect, Name: lo.ToPtr("ada")}, want: "DM"},
		{name: "named", room: Room{ID: "room-1", Type: RoomGroup, Name: lo.ToPtr("general")}, want: "general"},
		{name: "unnamed", room: Room{ID: "room-1", Type: RoomChannel}, want: "room-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.room.DisplayText(); got != tt.want {
				t.Fatalf("DisplayText() = %q, want %q", got, tt.want)
			}
		})
	}
}
