package chat

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// VideoMessage is a message carrying a video clip.
type VideoMessage struct {
	BaseMessage

	Length   time.Duration `validate:"min=0"`
	MimeType *string
	URI      string `validate:"required"`
}

// PartialVideo is the payload of a video message before promotion.
type PartialVideo struct {
	Length   time.Duration `validate:"min=0"`
	MimeType *string
	URI      string `validate:"required"`
}

func (v VideoMessage) Type() MessageType { return TypeVideo }

// VideoMessageFromMap decodes the video variant from its wire map.
func VideoMessageFromMap(m map[string]any) (VideoMessage, error) {
	base, err := baseFromMap(m)
	if err != nil {
		return VideoMessage{}, err
	}
	payload, err := PartialVideoFromMap(m)
	if err != nil {
		return VideoMessage{}, err
	}
	return VideoMessage{
		BaseMessage: base,
		Length:      payload.Length,
		MimeType:    payload.MimeType,
		URI:         payload.URI,
	}, nil
}

// VideoMessageFromPartial promotes a payload-only value by pairing it with
// the identity fields a server assigns.
func VideoMessageFromPartial(authorID, id string, p PartialVideo) VideoMessage {
	return VideoMessage{
		BaseMessage: BaseMessage{AuthorID: authorID, ID: id},
		Length:      p.Length,
		MimeType:    p.MimeType,
		URI:         p.URI,
	}
}

// Partial returns the payload-only view of the message.
func (v VideoMessage) Partial() PartialVideo {
	return PartialVideo{
		Length:   v.Length,
		MimeType: v.MimeType,
		URI:      v.URI,
	}
}

func (v VideoMessage) ToMap() map[string]any {
	return lo.Assign(v.baseMap(TypeVideo), v.Partial().ToMap())
}

func (v VideoMessage) MarshalJSON() ([]byte, error) {
	return wireJSON.Marshal(v.ToMap())
}

func (v VideoMessage) CopyWith(opts ...CopyOption) Message {
	p := makePatch(opts)
	next := v
	next.Metadata = p.mergeMetadata(v.Metadata)
	next.Status = p.mergeStatus(v.Status)
	return next
}

func (v VideoMessage) Equal(other Message) bool {
	o, ok := other.(VideoMessage)
	if !ok {
		return false
	}
	return v.baseEqual(o.BaseMessage) &&
		v.Length == o.Length &&
		strPtrEqual(v.MimeType, o.MimeType) &&
		v.URI == o.URI
}

func (v VideoMessage) DisplayText() string {
	return fmt.Sprintf("Video (%s)", v.Length)
}

// PartialVideoFromMap decodes the payload fields of a video message.
func PartialVideoFromMap(m map[string]any) (PartialVideo, error) {
	length, err := requireMillis(m, "length")
	if err != nil {
		return PartialVideo{}, err
	}
	mimeType, err := optionalString(m, "mimeType")
	if err != nil {
		return PartialVideo{}, err
	}
	uri, err := requireString(m, "uri")
	if err != nil {
		return PartialVideo{}, err
	}
	return PartialVideo{
		Length:   length,
		MimeType: mimeType,
		URI:      uri,
	}, nil
}

func (p PartialVideo) ToMap() map[string]any {
	out := map[string]any{
		"length":   p.Length.Milliseconds(),
		"mimeType": nil,
		"uri":      p.URI,
	}
	if p.MimeType != nil {
		out["mimeType"] = *p.MimeType
	}
	return out
}
