package chat

import (
	"strings"

	"github.com/samber/lo"
	"gorm.io/datatypes"
)

// Role grants a user elevated rights inside a room. The zero value means no
// particular role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAgent     Role = "agent"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// ParseRole resolves a raw role name.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleAgent, RoleModerator, RoleUser:
		return Role(s), nil
	default:
		return "", &MalformedFieldError{Field: "role", Value: s}
	}
}

// User is a conversation participant. Like messages it is a plain value with
// a wire-map codec; only id is required.
type User struct {
	FirstName *string
	ID        string `validate:"required"`
	ImageURL  *string
	LastName  *string
	LastSeen  *int64
	Metadata  datatypes.JSONMap
	Role      Role `validate:"omitempty,oneof=admin agent moderator user"`
}

// UserFromMap decodes a user from its wire map.
func UserFromMap(m map[string]any) (User, error) {
	firstName, err := optionalString(m, "firstName")
	if err != nil {
		return User{}, err
	}
	id, err := requireString(m, "id")
	if err != nil {
		return User{}, err
	}
	imageURL, err := optionalString(m, "imageUrl")
	if err != nil {
		return User{}, err
	}
	lastName, err := optionalString(m, "lastName")
	if err != nil {
		return User{}, err
	}
	lastSeen, err := optionalSeconds(m, "lastSeen")
	if err != nil {
		return User{}, err
	}
	metadata, err := metadataField(m)
	if err != nil {
		return User{}, err
	}
	role, err := roleField(m)
	if err != nil {
		return User{}, err
	}
	return User{
		FirstName: firstName,
		ID:        id,
		ImageURL:  imageURL,
		LastName:  lastName,
		LastSeen:  lastSeen,
		Metadata:  metadata,
		Role:      role,
	}, nil
}

func roleField(m map[string]any) (Role, error) {
	raw, ok := m["role"]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &MalformedFieldError{Field: "role", Value: raw}
	}
	return ParseRole(s)
}

func (v User) ToMap() map[string]any {
	out := map[string]any{
		"firstName": nil,
		"id":        v.ID,
		"imageUrl":  nil,
		"lastName":  nil,
		"lastSeen":  nil,
		"metadata":  nil,
		"role":      nil,
	}
	if v.FirstName != nil {
		out["firstName"] = *v.FirstName
	}
	if v.ImageURL != nil {
		out["imageUrl"] = *v.ImageURL
	}
	if v.LastName != nil {
		out["lastName"] = *v.LastName
	}
	if v.LastSeen != nil {
		out["lastSeen"] = *v.LastSeen
	}
	if v.Metadata != nil {
		out["metadata"] = map[string]any(v.Metadata)
	}
	if v.Role != "" {
		out["role"] = string(v.Role)
	}
	return out
}

func (v User) MarshalJSON() ([]byte, error) {
	return wireJSON.Marshal(v.ToMap())
}

// CopyWith returns a copy with the given overrides applied. Users carry no
// status or preview, so only the metadata options have an effect.
func (v User) CopyWith(opts ...CopyOption) User {
	p := makePatch(opts)
	next := v
	next.Metadata = p.mergeMetadata(v.Metadata)
	return next
}

func (v User) Equal(other User) bool {
	return strPtrEqual(v.FirstName, other.FirstName) &&
		v.ID == other.ID &&
		strPtrEqual(v.ImageURL, other.ImageURL) &&
		strPtrEqual(v.LastName, other.LastName) &&
		int64PtrEqual(v.LastSeen, other.LastSeen) &&
		metadataEqual(v.Metadata, other.Metadata) &&
		v.Role == other.Role
}

func (v User) DisplayText() string {
	name := strings.TrimSpace(lo.FromPtr(v.FirstName) + " " + lo.FromPtr(v.LastName))
	if name == "" {
		return v.ID
	}
	return name
}
