package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/san-kum/qpcrsim/internal/logging"
	"github.com/san-kum/qpcrsim/internal/reference"
	"github.com/san-kum/qpcrsim/internal/storage"
	"github.com/san-kum/qpcrsim/internal/tui"
	"github.com/san-kum/qpcrsim/internal/viz"
)

var (
	dataDir       string
	logLevel      string
	logFile       string
	referencePath string
	themeName     string

	logger  *slog.Logger
	refs    *reference.DB
	logSink *os.File
)

// main runs the qpcrsim CLI. Without a subcommand it opens the terminal UI.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "qpcrsim",
		Short:             "qPCR amplification curve simulator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logSink != nil {
				logSink.Close()
				logSink = nil
			}
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".qpcrsim", "run store directory")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVar(&referencePath, "reference", "targets.yaml", "reference target file (yaml or json); built-in targets when missing")
	pf.StringVar(&themeName, "theme", viz.ThemeLab.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal UI",
		RunE:  runTUI,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the summary of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().BoolVar(&plotLinear, "linear", false, "linear y axis instead of log10")
	plotCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width in columns")
	plotCmd.Flags().IntVar(&plotHeight, "height", 14, "plot height in rows")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's curve to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportImageCmd := &cobra.Command{
		Use:   "export-image [run_id] [file]",
		Short: "render a run to png, svg, pdf or jpg",
		Args:  cobra.ExactArgs(2),
		RunE:  exportImage,
	}
	exportImageCmd.Flags().BoolVar(&plotLinear, "linear", false, "linear y axis instead of log10")

	rootCmd.AddCommand(newRunCmd(), newSweepCmd(), newReplicatesCmd(), tuiCmd, newTargetsCmd(), newPresetsCmd(),
		listCmd, showCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportImageCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	w := cmd.ErrOrStderr()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logSink = f
		w = f
	}
	logger = logging.NewLogger(logLevel, w)

	db, err := reference.Load(referencePath)
	if err != nil {
		return err
	}
	refs = db
	logger.Debug("reference targets loaded", "path", referencePath, "count", db.Len())
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// stderr output would tear the alt screen.
	log := logging.Discard()
	if logSink != nil {
		log = logger
	}
	return tui.Run(tui.Options{
		References: refs,
		Store:      storage.New(dataDir),
		Logger:     log,
		Theme:      themeName,
	})
}
