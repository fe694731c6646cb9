package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jestkent/Suspicious-Connection-Monitor/internal/config"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/logging"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/netsnap"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/pipeline"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/procdir"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/report"
	"github.com/jestkent/Suspicious-Connection-Monitor/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one scan: snapshot, classify, report",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("report-dir", "", "directory for the per-run CSV report")
	scanCmd.Flags().String("ports", "", "comma-separated suspicious-port watchlist override")
	scanCmd.Flags().Int("top", 0, "flagged rows shown in the summary")
	scanCmd.Flags().Bool("no-save", false, "skip writing the CSV report")
	scanCmd.Flags().String("json", "", "write a JSON export to this path, - for stdout")
	scanCmd.Flags().Bool("json-pretty", false, "indent the JSON export")
	scanCmd.Flags().Bool("interactive", false, "browse the snapshot in the terminal after the scan")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Flags override everything the config resolved.
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir, _ = cmd.Flags().GetString("report-dir")
	}
	if cmd.Flags().Changed("top") {
		cfg.TopFlagged, _ = cmd.Flags().GetInt("top")
	}
	if cmd.Flags().Changed("ports") {
		raw, _ := cmd.Flags().GetString("ports")
		ports, err := config.ParsePorts(raw)
		if err != nil {
			return fmt.Errorf("--ports: %w", err)
		}
		cfg.SuspiciousPorts = ports
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	noSave, _ := cmd.Flags().GetBool("no-save")
	jsonPath, _ := cmd.Flags().GetString("json")
	jsonPretty, _ := cmd.Flags().GetBool("json-pretty")
	interactive, _ := cmd.Flags().GetBool("interactive")

	runID := uuid.NewString()
	capturedAt := time.Now().UTC()
	started := time.Now()

	logger.Info("scan starting",
		"run_id", runID,
		"watchlist_ports", len(cfg.SuspiciousPorts))

	conns, err := netsnap.Read()
	if err != nil {
		// Distinct from a legitimately empty table: nothing was read.
		logger.Error("tcp table read failed", "run_id", runID, "error", err.Error())
		fmt.Fprintln(os.Stderr, "could not read the tcp connection table; retry from a privileged shell")
		return fmt.Errorf("read tcp table: %w", err)
	}

	rows := pipeline.Run(conns, procdir.System(), cfg.PortSet())
	logger.Debug("pipeline done",
		"run_id", runID,
		"raw_rows", len(conns),
		"kept_rows", len(rows))

	if err := report.WriteTable(os.Stdout, rows); err != nil {
		return err
	}

	if !noSave {
		path, err := report.Saver{Dir: cfg.ReportDir}.Save(rows, runID, capturedAt)
		if err != nil {
			logger.Error("report save failed", "run_id", runID, "error", err.Error())
			return err
		}
		logger.Info("report written", "run_id", runID, "path", path)
		fmt.Printf("report saved: %s\n", path)
	}

	if jsonPath != "" {
		if err := report.WriteJSON(jsonPath, report.NewExport(rows, runID, capturedAt), jsonPretty); err != nil {
			return err
		}
	}

	summary := report.BuildSummary(rows, cfg.TopFlagged)
	if err := report.WriteSummary(os.Stdout, summary); err != nil {
		return err
	}

	logger.Info("scan finished",
		"run_id", runID,
		"total", summary.Total,
		"flagged", summary.Flagged,
		"duration_ms", time.Since(started).Milliseconds())

	if interactive {
		return ui.Run(rows, capturedAt)
	}
	return nil
}
