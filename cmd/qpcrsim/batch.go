package main

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/qpcrsim/internal/assay"
	"github.com/san-kum/qpcrsim/internal/automation"
)

// maxOverlay caps how many replicate curves share one terminal plot.
const maxOverlay = 8

func newSweepCmd() *cobra.Command {
	rf := &runFlags{}
	sw := automation.Sweep{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one run parameter and report Ct at each value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, rf, sw)
		},
	}
	rf.bind(cmd)
	cmd.Flags().StringVar(&sw.Param, "param", automation.ParamEfficiency, fmt.Sprintf("parameter to vary %v", automation.SweepParams))
	cmd.Flags().Float64Var(&sw.Min, "from", 0.5, "first value")
	cmd.Flags().Float64Var(&sw.Max, "to", 1.0, "last value")
	cmd.Flags().IntVar(&sw.Steps, "steps", 6, "number of values")
	return cmd
}

func runSweep(cmd *cobra.Command, rf *runFlags, sw automation.Sweep) error {
	settings, seed, err := buildSettings(cmd, rf)
	if err != nil {
		return err
	}

	logger.Debug("starting sweep", "param", sw.Param, "from", sw.Min, "to", sw.Max, "steps", sw.Steps, "seed", seed)
	start := time.Now()
	points, err := automation.RunSweep(cmd.Context(), *settings, sw, assay.SeededNoise(seed))
	if err != nil {
		return err
	}
	logger.Info("sweep complete", "points", len(points), "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tCT\tEND POINT\tOBSERVED EFF\n", sw.Param)
	cts := make([]float64, 0, len(points))
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%s\t%.4g\t%.3f\n",
			p.Value, p.Result.CtLabel(), p.Metrics["end_point"], p.Metrics["observed_efficiency"])
		if p.Result.Reached() {
			cts = append(cts, float64(p.Result.Ct))
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(cts) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(cts,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("Ct vs %s (reached points only)", sw.Param)),
		))
	}
	return nil
}

func newReplicatesCmd() *cobra.Command {
	rf := &runFlags{}
	var n int
	cmd := &cobra.Command{
		Use:   "replicates",
		Short: "repeat one run with different noise seeds and summarise Ct",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplicates(cmd, rf, n)
		},
	}
	rf.bind(cmd)
	cmd.Flags().IntVarP(&n, "count", "n", 12, "number of replicates")
	return cmd
}

func runReplicates(cmd *cobra.Command, rf *runFlags, n int) error {
	settings, seed, err := buildSettings(cmd, rf)
	if err != nil {
		return err
	}

	logger.Debug("starting replicates", "count", n, "seed", seed)
	reps, err := automation.RunReplicates(cmd.Context(), *settings, n, seed)
	if err != nil {
		return err
	}
	st := automation.Stats(reps)
	logger.Info("replicates complete", "count", st.N, "reached", st.Reached)

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tCT\tEND POINT")
	for _, r := range reps {
		fmt.Fprintf(w, "%d\t%s\t%.4g\n", r.Seed, r.Result.CtLabel(), r.Metrics["end_point"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nreplicates: %d  reached: %d\n", st.N, st.Reached)
	if st.Reached > 0 {
		fmt.Fprintf(out, "Ct mean: %.2f  sd: %.3f  range: %g-%g\n", st.Mean, st.StdDev, st.Min, st.Max)
	}

	series := make([][]float64, 0, maxOverlay)
	for _, r := range reps {
		if len(series) == maxOverlay {
			break
		}
		s := make([]float64, len(r.Result.Curve))
		for i, v := range r.Result.Curve {
			s[i] = math.Log10(math.Max(v, 1e-3))
		}
		series = append(series, s)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("log10 fluorescence, first %d replicates", len(series))),
	))
	return nil
}
