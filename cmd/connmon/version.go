package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridable at build time: -ldflags "-X main.version=v1.2.3".
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the connmon version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("connmon %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
