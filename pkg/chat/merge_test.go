package chat

import (
	"testing"

	"github.com/samber/lo"
	"gorm.io/datatypes"

	"git.solsynth.dev/hypernet/postcard/pkg/preview"
)

func TestCopyWithMetadataUnion(t *testing.T) {
	msg := TextMessage{
		BaseMessage: BaseMessage{
			AuthorID: "author-1",
			ID:       "msg-1",
			Metadata: datatypes.JSONMap{"a": 1, "b": 2},
		},
		Text: "hello",
	}

	merged := msg.CopyWith(WithMetadata(datatypes.JSONMap{"b": 3, "c": 4}))
	got := merged.Base().Metadata
	want := datatypes.JSONMap{"a": 1, "b": 3, "c": 4}
	if !metadataEqual(got, want) {
		t.Fatalf("merged metadata = %v, want %v", got, want)
	}

	// Neither input may be touched by the union.
	if !metadataEqual(msg.Metadata, datatypes.JSONMap{"a": 1, "b": 2}) {
		t.Fatalf("original metadata mutated: %v", msg.Metadata)
	}

	// Text and identity always carry over.
	text := merged.(TextMessage)
	if text.Text != "hello" || text.AuthorID != "author-1" || text.ID != "msg-1" {
		t.Fatalf("payload or identity changed: %#v", text)
	}
}

func TestCopyWithMetadataThreeStates(t *testing.T) {
	base := func() FileMessage {
		return FileMessage{
			BaseMessage: BaseMessage{
				AuthorID: "author-1",
				ID:       "msg-1",
				Metadata: datatypes.JSONMap{"a": 1},
			},
			FileName: "report.pdf",
			Size:     2048,
			URI:      "https://files.example.com/report.pdf",
		}
	}

	t.Run("omitted keeps metadata", func(t *testing.T) {
		got := base().CopyWith().Base().Metadata
		if !metadataEqual(got, datatypes.JSONMap{"a": 1}) {
			t.Fatalf("metadata = %v, want unchanged", got)
		}
	})

	t.Run("clear drops metadata", func(t *testing.T) {
		if got := base().CopyWith(ClearMetadata()).Base().Metadata; got != nil {
			t.Fatalf("metadata = %v, want nil", got)
		}
	})

	t.Run("nil override drops metadata", func(t *testing.T) {
		if got := base().CopyWith(WithMetadata(nil)).Base().Metadata; got != nil {
			t.Fatalf("metadata = %v, want nil", got)
		}
	})

	t.Run("empty override keeps previous keys", func(t *testing.T) {
		got := base().CopyWith(WithMetadata(datatypes.JSONMap{})).Base().Metadata
		if !metadataEqual(got, datatypes.JSONMap{"a": 1}) {
			t.Fatalf("metadata = %v, want {a:1}", got)
		}
	})

	t.Run("empty override on empty start yields empty bag", func(t *testing.T) {
		msg := base()
		msg.Metadata = nil
		got := msg.CopyWith(WithMetadata(datatypes.JSONMap{})).Base().Metadata
		if got == nil || len(got) != 0 {
			t.Fatalf("metadata = %#v, want empty non-nil bag", got)
		}
	})
}

func TestCopyWithStatus(t *testing.T) {
	msg := VideoMessage{
		BaseMessage: BaseMessage{AuthorID: "author-1", ID: "msg-1", Status: StatusSending},
		Length:      90 * 1e9,
		URI:         "https://files.example.com/clip.mp4",
	}

	if got := msg.CopyWith().Base().Status; got != StatusSending {
		t.Fatalf("omitted status = %q, want %q", got, StatusSending)
	}
	if got := msg.CopyWith(WithStatus(StatusRead)).Base().Status; got != StatusRead {
		t.Fatalf("replaced status = %q, want %q", got, StatusRead)
	}
	if got := msg.CopyWith(WithStatus("")).Base().Status; got != "" {
		t.Fatalf("explicitly cleared status = %q, want unset", got)
	}
}

func TestCopyWithPreviewData(t *testing.T) {
	msg := TextMessage{
		BaseMessage: BaseMessage{AuthorID: "author-1", ID: "msg-1"},
		Text:        "check this out",
	}

	data := preview.PreviewData{Title: lo.ToPtr("Example"), Link: lo.ToPtr("https://example.com")}
	withPreview := msg.CopyWith(WithPreviewData(data)).(TextMessage)
	if withPreview.PreviewData == nil || !withPreview.PreviewData.Equal(data) {
		t.Fatalf("preview after set = %#v, want %#v", withPreview.PreviewData, data)
	}

	kept := withPreview.CopyWith(WithStatus(StatusDelivered)).(TextMessage)
	if kept.PreviewData == nil {
		t.Fatalf("preview dropped by unrelated override")
	}

	cleared := withPreview.CopyWith(ClearPreviewData()).(TextMessage)
	if cleared.PreviewData != nil {
		t.Fatalf("preview after clear = %#v, want nil", cleared.PreviewData)
	}
}

func TestCopyWithPreviewIgnoredOffText(t *testing.T) {
	msg := FileMessage{
		BaseMessage: BaseMessage{AuthorID: "author-1", ID: "msg-1", Status: StatusSending},
		FileName:    "report.pdf",
		Size:        2048,
		URI:         "https://files.example.com/report.pdf",
	}

	got := msg.CopyWith(
		WithPreviewData(preview.PreviewData{Title: lo.ToPtr("Example")}),
		WithStatus(StatusDelivered),
	)
	file, ok := got.(FileMessage)
	if !ok {
		t.Fatalf("CopyWith changed variant: %#v", got)
	}
	if file.Status != StatusDelivered {
		t.Fatalf("status = %q, want %q", file.Status, StatusDelivered)
	}
	if !file.Equal(msg.CopyWith(WithStatus(StatusDelivered))) {
		t.Fatalf("preview option altered a file message")
	}
}
