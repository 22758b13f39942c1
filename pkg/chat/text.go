package chat

import (
	"git.solsynth.dev/hypernet/postcard/pkg/preview"
)

// TextMessage is a plain text message, optionally enriched with a link
// preview. It is the only variant without a partial form; a promotion-style
// flow constructs it directly with a nil preview.
type TextMessage struct {
	BaseMessage

	PreviewData *preview.PreviewData
	Text        string `validate:"required"`
}

func (v TextMessage) Type() MessageType { return TypeText }

// TextMessageFromMap decodes the text variant from its wire map.
func TextMessageFromMap(m map[string]any) (TextMessage, error) {
	base, err := baseFromMap(m)
	if err != nil {
		return TextMessage{}, err
	}
	text, err := requireString(m, "text")
	if err != nil {
		return TextMessage{}, err
	}
	previewData, err := previewField(m)
	if err != nil {
		return TextMessage{}, err
	}
	return TextMessage{
		BaseMessage: base,
		PreviewData: previewData,
		Text:        text,
	}, nil
}

func previewField(m map[string]any) (*preview.PreviewData, error) {
	raw, ok := m["previewData"]
	if !ok || raw == nil {
		return nil, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &MalformedFieldError{Field: "previewData", Value: raw}
	}
	data, err := preview.FromMap(obj)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (v TextMessage) ToMap() map[string]any {
	out := v.baseMap(TypeText)
	out["previewData"] = nil
	out["text"] = v.Text
	if v.PreviewData != nil {
		out["previewData"] = v.PreviewData.ToMap()
	}
	return out
}

func (v TextMessage) MarshalJSON() ([]byte, error) {
	return wireJSON.Marshal(v.ToMap())
}

// CopyWith is the only variant merge that honors the preview options.
func (v TextMessage) CopyWith(opts ...CopyOption) Message {
	p := makePatch(opts)
	next := v
	next.Metadata = p.mergeMetadata(v.Metadata)
	next.PreviewData = p.mergePreview(v.PreviewData)
	next.Status = p.mergeStatus(v.Status)
	return next
}

func (v TextMessage) Equal(other Message) bool {
	o, ok := other.(TextMessage)
	if !ok {
		return false
	}
	return v.baseEqual(o.BaseMessage) &&
		previewPtrEqual(v.PreviewData, o.PreviewData) &&
		v.Text == o.Text
}

func previewPtrEqual(a, b *preview.PreviewData) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

func (v TextMessage) DisplayText() string {
	return v.Text
}
