package chat

import (
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"git.solsynth.dev/hypernet/postcard/pkg/preview"
)

// CopyOption selects a field override for CopyWith. Every option
// distinguishes "provided" from "omitted": an omitted field is always carried
// over unchanged.
type CopyOption func(*patch)

type patch struct {
	metadata    datatypes.JSONMap
	metadataSet bool
	preview     *preview.PreviewData
	previewSet  bool
	status      Status
	statusSet   bool
}

func makePatch(opts []CopyOption) patch {
	var p patch
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithMetadata overrides the metadata bag. A nil bag clears it; a non-nil bag
// is unioned over the previous one, override keys winning on conflict.
func WithMetadata(metadata datatypes.JSONMap) CopyOption {
	return func(p *patch) {
		p.metadata = metadata
		p.metadataSet = true
	}
}

// ClearMetadata drops the metadata bag from the copy.
func ClearMetadata() CopyOption {
	return WithMetadata(nil)
}

// WithStatus replaces the delivery status. Status is never cleared
// implicitly; pass the zero Status to clear it on purpose.
func WithStatus(status Status) CopyOption {
	return func(p *patch) {
		p.status = status
		p.statusSet = true
	}
}

// WithPreviewData replaces the link preview of a text message. Variants
// without a preview ignore the option.
func WithPreviewData(data preview.PreviewData) CopyOption {
	return func(p *patch) {
		p.preview = &data
		p.previewSet = true
	}
}

// ClearPreviewData drops the link preview from the copy of a text message.
func ClearPreviewData() CopyOption {
	return func(p *patch) {
		p.preview = nil
		p.previewSet = true
	}
}

// mergeMetadata resolves the three-state metadata contract: omitted keeps the
// previous bag, nil clears it, and a map unions into a fresh bag so neither
// input is mutated.
func (p patch) mergeMetadata(prev datatypes.JSONMap) datatypes.JSONMap {
	if !p.metadataSet {
		return prev
	}
	if p.metadata == nil {
		return nil
	}
	return lo.Assign(map[string]any(prev), map[string]any(p.metadata))
}

func (p patch) mergeStatus(prev Status) Status {
	if !p.statusSet {
		return prev
	}
	return p.status
}

func (p patch) mergePreview(prev *preview.PreviewData) *preview.PreviewData {
	if !p.previewSet {
		return prev
	}
	return p.preview
}
