package chat

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
)

// AudioMessage is a message carrying a voice or audio clip. WaveForm holds
// decibel levels sampled for rendering, each expected in [0,120]; the range
// is a caller contract and never enforced on decode.
type AudioMessage struct {
	BaseMessage

	Length   time.Duration `validate:"min=0"`
	MimeType *string
	URI      string    `validate:"required"`
	WaveForm []float64 `validate:"omitempty,dive,min=0,max=120"`
}

// PartialAudio is the payload of an audio message before promotion.
type PartialAudio struct {
	Length   time.Duration `validate:"min=0"`
	MimeType *string
	URI      string    `validate:"required"`
	WaveForm []float64 `validate:"omitempty,dive,min=0,max=120"`
}

func (v AudioMessage) Type() MessageType { return TypeAudio }

// AudioMessageFromMap decodes the audio variant from its wire map.
func AudioMessageFromMap(m map[string]any) (AudioMessage, error) {
	base, err := baseFromMap(m)
	if err != nil {
		return AudioMessage{}, err
	}
	payload, err := PartialAudioFromMap(m)
	if err != nil {
		return AudioMessage{}, err
	}
	return AudioMessage{
		BaseMessage: base,
		Length:      payload.Length,
		MimeType:    payload.MimeType,
		URI:         payload.URI,
		WaveForm:    payload.WaveForm,
	}, nil
}

// AudioMessageFromPartial promotes a payload-only value by pairing it with
// the identity fields a server assigns.
func AudioMessageFromPartial(authorID, id string, p PartialAudio) AudioMessage {
	return AudioMessage{
		BaseMessage: BaseMessage{AuthorID: authorID, ID: id},
		Length:      p.Length,
		MimeType:    p.MimeType,
		URI:         p.URI,
		WaveForm:    p.WaveForm,
	}
}

// Partial returns the payload-only view of the message.
func (v AudioMessage) Partial() PartialAudio {
	return PartialAudio{
		Length:   v.Length,
		MimeType: v.MimeType,
		URI:      v.URI,
		WaveForm: v.WaveForm,
	}
}

func (v AudioMessage) ToMap() map[string]any {
	return lo.Assign(v.baseMap(TypeAudio), v.Partial().ToMap())
}

func (v AudioMessage) MarshalJSON() ([]byte, error) {
	return wireJSON.Marshal(v.ToMap())
}

func (v AudioMessage) CopyWith(opts ...CopyOption) Message {
	p := makePatch(opts)
	next := v
	next.Metadata = p.mergeMetadata(v.Metadata)
	next.Status = p.mergeStatus(v.Status)
	return next
}

func (v AudioMessage) Equal(other Message) bool {
	o, ok := other.(AudioMessage)
	if !ok {
		return false
	}
	return v.baseEqual(o.BaseMessage) &&
		v.Length == o.Length &&
		strPtrEqual(v.MimeType, o.MimeType) &&
		v.URI == o.URI &&
		waveFormEqual(v.WaveForm, o.WaveForm)
}

func waveFormEqual(a, b []float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.Equal(a, b)
}

func (v AudioMessage) DisplayText() string {
	return fmt.Sprintf("Audio (%s)", v.Length)
}

// PartialAudioFromMap decodes the payload fields of an audio message.
func PartialAudioFromMap(m map[string]any) (PartialAudio, error) {
	length, err := requireMillis(m, "length")
	if err != nil {
		return PartialAudio{}, err
	}
	mimeType, err := optionalString(m, "mimeType")
	if err != nil {
		return PartialAudio{}, err
	}
	uri, err := requireString(m, "uri")
	if err != nil {
		return PartialAudio{}, err
	}
	waveForm, err := waveFormField(m)
	if err != nil {
		return PartialAudio{}, err
	}
	return PartialAudio{
		Length:   length,
		MimeType: mimeType,
		URI:      uri,
		WaveForm: waveForm,
	}, nil
}

func (p PartialAudio) ToMap() map[string]any {
	out := map[string]any{
		"length":   p.Length.Milliseconds(),
		"mimeType": nil,
		"uri":      p.URI,
		"waveForm": nil,
	}
	if p.MimeType != nil {
		out["mimeType"] = *p.MimeType
	}
	if p.WaveForm != nil {
		out["waveForm"] = lo.Map(p.WaveForm, func(level float64, _ int) any { return level })
	}
	return out
}
