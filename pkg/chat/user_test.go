package chat

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"gorm.io/datatypes"
)

func sampleUser() User {
	return User{
		FirstName: lo.ToPtr("Ada"),
		ID:        "user-1",
		ImageURL:  lo.ToPtr("https://files.example.com/ada.png"),
		LastName:  lo.ToPtr("Lovelace"),
		LastSeen:  lo.ToPtr(int64(1735689600)),
		Metadata:  datatypes.JSONMap{"locale": "en"},
		Role:      RoleAdmin,
	}
}

func TestUserRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		user User
	}{
		{name: "full", user: sampleUser()},
		{name: "minimal", user: User{ID: "user-1"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserFromMap(tt.user.ToMap())
			if err != nil {
				t.Fatalf("UserFromMap returned error: %v", err)
			}
			if !got.Equal(tt.user) {
				t.Fatalf("round trip = %#v, want %#v", got, tt.user)
			}
		})
	}

	out := User{ID: "user-1"}.ToMap()
	for _, key := range []string{"firstName", "imageUrl", "lastName", "lastSeen", "metadata", "role"} {
		val, ok := out[key]
		if !ok {
			t.Fatalf("unset optional %q omitted from map, want explicit null", key)
		}
		if val != nil {
			t.Fatalf("unset optional %q = %v, want null", key, val)
		}
	}
}

func TestUserDecodeErrors(t *testing.T) {
	_, err := UserFromMap(map[string]any{"firstName": "Ada"})
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "id" {
		t.Fatalf("error = %v, want *MissingFieldError{id}", err)
	}

	_, err = UserFromMap(map[string]any{"id": "user-1", "role": "boss"})
	if !isMalformed(t, err, "role") {
		t.Fatalf("unknown role error = %v, want *MalformedFieldError", err)
	}

	_, err = UserFromMap(map[string]any{"id": "user-1", "role": 4})
	if !isMalformed(t, err, "role") {
		t.Fatalf("numeric role error = %v, want *MalformedFieldError", err)
	}

	got, err := UserFromMap(map[string]any{"id": "user-1", "role": nil})
	if err != nil {
		t.Fatalf("null role returned error: %v", err)
	}
	if got.Role != "" {
		t.Fatalf("null role decoded to %q, want unset", got.Role)
	}
}

func TestUserCopyWith(t *testing.T) {
	user := sampleUser()
	merged := user.CopyWith(WithMetadata(datatypes.JSONMap{"locale": "fr", "theme": "dark"}))
	if !metadataEqual(merged.Metadata, datatypes.JSONMap{"locale": "fr", "theme": "dark"}) {
		t.Fatalf("merged metadata = %v", merged.Metadata)
	}
	if merged.ID != user.ID || !strPtrEqual(merged.FirstName, user.FirstName) {
		t.Fatalf("identity changed: %#v", merged)
	}
	if cleared := user.CopyWith(ClearMetadata()); cleared.Metadata != nil {
		t.Fatalf("cleared metadata = %v, want nil", cleared.Metadata)
	}
}

func TestUserDisplayText(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "both names", user: sampleUser(), want: "Ada Lovelace"},
		{name: "first only", user: User{ID: "user-1", FirstName: lo.ToPtr("Ada")}, want: "Ada"},
		{name: "last only", user: User{ID: "user-1", LastName: lo.ToPtr("Lovelace")}, want: "Lovelace"},
		{name: "no names", user: User{ID: "user-1"}, want: "user-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayText(); got != tt.want {
				t.Fatalf("DisplayText() = %q, want %q", got, tt.want)
			}
		})
	}
}
