package main

import (
	"encoding/csv"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/qpcrsim/internal/report"
	"github.com/san-kum/qpcrsim/internal/storage"
)

var (
	plotLinear bool
	plotWidth  int
	plotHeight int
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCYCLES\tEFF\tTHRESHOLD\tCT\tDYE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3g\t%g\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Cycles,
			run.Efficiency,
			run.Threshold,
			run.CtLabel(),
			run.Assay.Dye,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "time: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "seed: %d\n\n", meta.Seed)
	fmt.Fprint(out, report.Summary(run.Settings, run.Result, run.Metrics))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}
	if len(run.Result.Curve) == 0 {
		return fmt.Errorf("no data to plot")
	}

	opts := report.PlotOptions{Width: plotWidth, Height: plotHeight, Log: !plotLinear}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "cycles: %d\n\n", len(run.Result.Curve))
	fmt.Fprintln(out, report.ASCIIPlot(run.Result, opts))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	if len(curve) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteCurveCSV(csv.NewWriter(cmd.OutOrStdout()), curve)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), meta, run)
}

func exportImage(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	opts := report.DefaultImageOptions()
	opts.Log = !plotLinear
	opts.Title = fmt.Sprintf("Amplification Curve (%s)", args[0])
	if err := report.SaveImage(args[1], run.Result, opts); err != nil {
		return err
	}
	logger.Info("image written", "run", args[0], "path", args[1])
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
	return nil
}
