package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the build with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("postcard " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
