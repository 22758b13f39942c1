package chat

import (
	"github.com/samber/lo"
)

// ImageMessage is a message carrying a picture, with optional intrinsic
// dimensions in pixels.
type ImageMessage struct {
	BaseMessage

	Height    *float64
	ImageName string `validate:"required"`
	Size      int64  `validate:"min=0"`
	URI       string `validate:"required"`
	Width     *float64
}

// PartialImage is the payload of an image message before promotion.
type PartialImage struct {
	Height    *float64
	ImageName string `validate:"required"`
	Size      int64  `validate:"min=0"`
	URI       string `validate:"required"`
	Width     *float64
}

func (v ImageMessage) Type() MessageType { return TypeImage }

// ImageMessageFromMap decodes the image variant from its wire map.
func ImageMessageFromMap(m map[string]any) (ImageMessage, error) {
	base, err := baseFromMap(m)
	if err != nil {
		return ImageMessage{}, err
	}
	payload, err := PartialImageFromMap(m)
	if err != nil {
		return ImageMessage{}, err
	}
	return ImageMessage{
		BaseMessage: base,
		Height:      payload.Height,
		ImageName:   payload.ImageName,
		Size:        payload.Size,
		URI:         payload.URI,
		Width:       payload.Width,
	}, nil
}

// ImageMessageFromPartial promotes a payload-only value by pairing it with
// the identity fields a server assigns.
func ImageMessageFromPartial(authorID, id string, p PartialImage) ImageMessage {
	return ImageMessage{
		BaseMessage: BaseMessage{AuthorID: authorID, ID: id},
		Height:      p.Height,
		ImageName:   p.ImageName,
		Size:        p.Size,
		URI:         p.URI,
		Width:       p.Width,
	}
}

// Partial returns the payload-only view of the message.
func (v ImageMessage) Partial() PartialImage {
	return PartialImage{
		Height:    v.Height,
		ImageName: v.ImageName,
		Size:      v.Size,
		URI:       v.URI,
		Width:     v.Width,
	}
}

func (v ImageMessage) ToMap() map[string]any {
	return lo.Assign(v.baseMap(TypeImage), v.Partial().ToMap())
}

func (v ImageMessage) MarshalJSON() ([]byte, error) {
	return wireJSON.Marshal(v.ToMap())
}

func (v ImageMessage) CopyWith(opts ...CopyOption) Message {
	p := makePatch(opts)
	next := v
	next.Metadata = p.mergeMetadata(v.Metadata)
	next.Status = p.mergeStatus(v.Status)
	return next
}

func (v ImageMessage) Equal(other Message) bool {
	o, ok := other.(ImageMessage)
	if !ok {
		return false
	}
	return v.baseEqual(o.BaseMessage) &&
		floatPtrEqual(v.Height, o.Height) &&
		v.ImageName == o.ImageName &&
		v.Size == o.Size &&
		v.URI == o.URI &&
		floatPtrEqual(v.Width, o.Width)
}

func (v ImageMessage) DisplayText() string {
	return v.ImageName
}

// PartialImageFromMap decodes the payload fields of an image message.
func PartialImageFromMap(m map[string]any) (PartialImage, error) {
	height, err := optionalFloat(m, "height")
	if err != nil {
		return PartialImage{}, err
	}
	imageName, err := requireString(m, "imageName")
	if err != nil {
		return PartialImage{}, err
	}
	size, err := requireSize(m, "size")
	if err != nil {
		return PartialImage{}, err
	}
	uri, err := requireString(m, "uri")
	if err != nil {
		return PartialImage{}, err
	}
	width, err := optionalFloat(m, "width")
	if err != nil {
		return PartialImage{}, err
	}
	return PartialImage{
		Height:    height,
		ImageName: imageName,
		Size:      size,
		URI:       uri,
		Width:     width,
	}, nil
}

func (p PartialImage) ToMap() map[string]any {
	out := map[string]any{
		"height":    nil,
		"imageName": p.ImageName,
		"size":      p.Size,
		"uri":       p.URI,
		"width":     nil,
	}
	if p.Height != nil {
		out["height"] = *p.Height
	}
	if p.Width != nil {
		out["width"] = *p.Width
	}
	return out
}
