package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"git.solsynth.dev/hypernet/postcard/pkg/chat"
	"git.solsynth.dev/hypernet/postcard/pkg/ident"
	"git.solsynth.dev/hypernet/postcard/pkg/wire"
)

var (
	sampleCount int
	sampleType  string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Emit sample messages for client development",
	Long: `sample generates well-formed messages through the partial-promotion
path with fresh ids and timestamps, and emits them as a newline-delimited
JSON stream on stdout. Without --type the variants rotate.`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

// sampleOrder is the rotation used when no variant is pinned.
var sampleOrder = []chat.MessageType{
	chat.TypeText, chat.TypeFile, chat.TypeImage, chat.TypeAudio, chat.TypeVideo,
}

func init() {
	sampleCmd.Flags().IntVar(&sampleCount, "count", 5, "How many messages to emit")
	sampleCmd.Flags().String("author", "", "Author id of the generated messages")
	sampleCmd.Flags().StringVar(&sampleType, "type", "", "Pin one variant (audio, file, image, text, video)")
	_ = viper.BindPFlag("sample.author", sampleCmd.Flags().Lookup("author"))
	rootCmd.AddCommand(sampleCmd)
}

// sampleMessage builds the n-th sample of the given variant. Every variant
// except text goes through its partial's promotion; text is constructed
// directly with a nil preview, which is the promoted-text shape.
func sampleMessage(author string, tag chat.MessageType, n int) (chat.Message, error) {
	id := ident.New()
	switch tag {
	case chat.TypeText:
		return chat.TextMessage{
			BaseMessage: chat.BaseMessage{AuthorID: author, ID: id, Timestamp: ident.Stamp()},
			Text:        fmt.Sprintf("sample message %d", n),
		}, nil
	case chat.TypeFile:
		msg := chat.FileMessageFromPartial(author, id, chat.PartialFile{
			FileName: fmt.Sprintf("sample-%d.pdf", n),
			MimeType: lo.ToPtr("application/pdf"),
			Size:     2048,
			URI:      fmt.Sprintf("https://files.example.com/sample-%d.pdf", n),
		})
		msg.Timestamp = ident.Stamp()
		return msg, nil
	case chat.TypeImage:
		msg := chat.ImageMessageFromPartial(author, id, chat.PartialImage{
			Height:    lo.ToPtr(1080.0),
			ImageName: fmt.Sprintf("sample-%d.png", n),
			Size:      409600,
			URI:       fmt.Sprintf("https://files.example.com/sample-%d.png", n),
			Width:     lo.ToPtr(1920.0),
		})
		msg.Timestamp = ident.Stamp()
		return msg, nil
	case chat.TypeAudio:
		msg := chat.AudioMessageFromPartial(author, id, chat.PartialAudio{
			Length:   90 * 1e9,
			MimeType: lo.ToPtr("audio/ogg"),
			URI:      fmt.Sprintf("https://files.example.com/sample-%d.ogg", n),
			WaveForm: []float64{0, 24, 48, 96, 120},
		})
		msg.Timestamp = ident.Stamp()
		return msg, nil
	case chat.TypeVideo:
		msg := chat.VideoMessageFromPartial(author, id, chat.PartialVideo{
			Length:   150 * 1e9,
			MimeType: lo.ToPtr("video/mp4"),
			URI:      fmt.Sprintf("https://files.example.com/sample-%d.mp4", n),
		})
		msg.Timestamp = ident.Stamp()
		return msg, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", tag)
	}
}

// sampleStream writes count generated messages to w.
func sampleStream(author string, pinned chat.MessageType, count int, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for n := 1; n <= count; n++ {
		tag := pinned
		if tag == "" {
			tag = sampleOrder[(n-1)%len(sampleOrder)]
		}
		msg, err := sampleMessage(author, tag, n)
		if err != nil {
			return err
		}
		if err := chat.Validate(msg); err != nil {
			return fmt.Errorf("generated message failed validation: %w", err)
		}
		raw, err := wire.Marshal(msg)
		if err != nil {
			return err
		}
		if _, err := bw.Write(raw); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func runSample(cmd *cobra.Command, args []string) error {
	return sampleStream(viper.GetString("sample.author"), chat.MessageType(sampleType), sampleCount, os.Stdout)
}
