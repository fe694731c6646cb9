package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "connmon",
	Short: "Snapshot and triage the host's TCP connections",
	Long: `connmon takes one snapshot of the host's live TCP connections,
attributes each one to its owning process, and flags the rows worth a
second look: remote ports on the suspicious-port watchlist, listening
sockets, and connections to public addresses.

The tool only reads. It never terminates processes, never changes
firewall state, and never sends traffic anywhere.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}
