package chat

import (
	"github.com/samber/lo"
)

// FileMessage is a message carrying an attached file.
type FileMessage struct {
	BaseMessage

	FileName string `validate:"required"`
	MimeType *string
	Size     int64  `validate:"min=0"`
	URI      string `validate:"required"`
}

// PartialFile is the payload of a file message that has no identity fields
// yet, e.g. before a server assigned an id. Promote it with
// FileMessageFromPartial.
type PartialFile struct {
	FileName string `validate:"required"`
	MimeType *string
	Size     int64  `validate:"min=0"`
	URI      string `validate:"required"`
}

func (v FileMessage) Type() MessageType { return TypeFile }

// FileMessageFromMap decodes the file variant from its wire map.
func FileMessageFromMap(m map[string]any) (FileMessage, error) {
	base, err := baseFromMap(m)
	if err != nil {
		return FileMessage{}, err
	}
	payload, err := PartialFileFromMap(m)
	if err != nil {
		return FileMessage{}, err
	}
	return FileMessage{
		BaseMessage: base,
		FileName:    payload.FileName,
		MimeType:    payload.MimeType,
		Size:        payload.Size,
		URI:         payload.URI,
	}, nil
}

// FileMessageFromPartial promotes a payload-only value by pairing it with the
// identity fields a server assigns. Metadata, status and timestamp start
// unset.
func FileMessageFromPartial(authorID, id string, p PartialFile) FileMessage {
	return FileMessage{
		BaseMessage: BaseMessage{AuthorID: authorID, ID: id},
		FileName:    p.FileName,
		MimeType:    p.MimeType,
		Size:        p.Size,
		URI:         p.URI,
	}
}

// Partial returns the payload-only view of the message, the inverse of
// FileMessageFromPartial.
func (v FileMessage) Partial() PartialFile {
	return PartialFile{
		FileName: v.FileName,
		MimeType: v.MimeType,
		Size:     v.Size,
		URI:      v.URI,
	}
}

func (v FileMessage) ToMap() map[string]any {
	return lo.Assign(v.baseMap(TypeFile), v.Partial().ToMap())
}

func (v FileMessage) MarshalJSON() ([]byte, error) {
	return wireJSON.Marshal(v.ToMap())
}

func (v FileMessage) CopyWith(opts ...CopyOption) Message {
	p := makePatch(opts)
	next := v
	next.Metadata = p.mergeMetadata(v.Metadata)
	next.Status = p.mergeStatus(v.Status)
	return next
}

func (v FileMessage) Equal(other Message) bool {
	o, ok := other.(FileMessage)
	if !ok {
		return false
	}
	return v.baseEqual(o.BaseMessage) &&
		v.FileName == o.FileName &&
		strPtrEqual(v.MimeType, o.MimeType) &&
		v.Size == o.Size &&
		v.URI == o.URI
}

func (v FileMessage) DisplayText() string {
	return v.FileName
}

// PartialFileFromMap decodes the payload fields of a file message.
func PartialFileFromMap(m map[string]any) (PartialFile, error) {
	fileName, err := requireString(m, "fileName")
	if err != nil {
		return PartialFile{}, err
	}
	mimeType, err := optionalString(m, "mimeType")
	if err != nil {
		return PartialFile{}, err
	}
	size, err := requireSize(m, "size")
	if err != nil {
		return PartialFile{}, err
	}
	uri, err := requireString(m, "uri")
	if err != nil {
		return PartialFile{}, err
	}
	return PartialFile{
		FileName: fileName,
		MimeType: mimeType,
		Size:     size,
		URI:      uri,
	}, nil
}

func (p PartialFile) ToMap() map[string]any {
	out := map[string]any{
		"fileName": p.FileName,
		"mimeType": nil,
		"size":     p.Size,
		"uri":      p.URI,
	}
	if p.MimeType != nil {
		out["mimeType"] = *p.MimeType
	}
	return out
}
