package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"git.solsynth.dev/hypernet/postcard/pkg/chat"
	"git.solsynth.dev/hypernet/postcard/pkg/wire"
)

var checkCmd = &cobra.Command{
	Use:   "check [file ...]",
	Short: "Decode every message in the given streams",
	Long: `check decodes every line of the given newline-delimited JSON streams
(stdin when no file is given), logs each failure with its source and line
number, and prints per-variant counts. The exit code is non-zero when any
message failed to decode.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("fail-fast", false, "Stop at the first invalid message")
	_ = viper.BindPFlag("check.fail_fast", checkCmd.Flags().Lookup("fail-fast"))
	rootCmd.AddCommand(checkCmd)
}

type checkReport struct {
	tags     []chat.MessageType
	failures int
}

// checkStream decodes one stream into the report. With failFast it returns
// on the first bad line; otherwise bad lines are logged and counted.
func checkStream(name string, r io.Reader, failFast bool, report *checkReport) error {
	sc := wire.NewScanner(r)
	for sc.Scan() {
		if err := sc.Err(); err != nil {
			report.failures++
			if failFast {
				return fmt.Errorf("%s:%d: %w", name, sc.Line(), err)
			}
			log.Error().Err(err).Str("source", name).Int("line", sc.Line()).Msg("Invalid message.")
			continue
		}
		report.tags = append(report.tags, sc.Message().Type())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	failFast := viper.GetBool("check.fail_fast")
	var report checkReport

	if len(args) == 0 {
		if err := checkStream("stdin", os.Stdin, failFast, &report); err != nil {
			return err
		}
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		err = checkStream(path, f, failFast, &report)
		_ = f.Close()
		if err != nil {
			return err
		}
	}

	counts := lo.CountValues(report.tags)
	fmt.Printf("checked %d message(s): %d ok, %d invalid\n",
		len(report.tags)+report.failures, len(report.tags), report.failures)
	for _, tag := range slices.Sorted(maps.Keys(counts)) {
		fmt.Printf("  %s: %d\n", tag, counts[tag])
	}

	if report.failures > 0 {
		return fmt.Errorf("%d invalid message(s)", report.failures)
	}
	return nil
}
