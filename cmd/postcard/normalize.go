package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"git.solsynth.dev/hypernet/postcard/pkg/wire"
)

var normalizeOut string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Rewrite a message stream in canonical wire form",
	Long: `normalize decodes every message of a newline-delimited JSON stream
(stdin when no file is given) and re-emits it in canonical wire form: all
keys present, unset optionals as explicit nulls, sorted object keys. It
refuses the whole stream on the first message that fails to decode.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(normalizeCmd)
}

// normalizeStream rewrites one stream, stopping at the first decode failure.
func normalizeStream(name string, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	sc := wire.NewScanner(r)
	for sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%s:%d: %w", name, sc.Line(), err)
		}
		raw, err := wire.Marshal(sc.Message())
		if err != nil {
			return fmt.Errorf("encode %s:%d: %w", name, sc.Line(), err)
		}
		if _, err := bw.Write(raw); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return bw.Flush()
}

func runNormalize(cmd *cobra.Command, args []string) error {
	in, name := io.Reader(os.Stdin), "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()
		in, name = f, args[0]
	}

	out := io.Writer(os.Stdout)
	if normalizeOut != "" {
		f, err := os.Create(normalizeOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", normalizeOut, err)
		}
		defer f.Close()
		out = f
	}

	return normalizeStream(name, in, out)
}
