package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "postcard",
	Short: "Inspect and generate chat message wire streams",
	Long: `postcard works on newline-delimited JSON streams of chat messages:
checking them against the message model, rewriting them in canonical wire
form, and generating sample fixtures for client development.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running command.")
	}
}
