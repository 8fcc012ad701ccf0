package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/qpcrsim/internal/assay"
	"github.com/san-kum/qpcrsim/internal/config"
	"github.com/san-kum/qpcrsim/internal/fasta"
	"github.com/san-kum/qpcrsim/internal/reference"
	"github.com/san-kum/qpcrsim/internal/report"
	"github.com/san-kum/qpcrsim/internal/storage"
)

type runFlags struct {
	cycles     int
	efficiency float64
	threshold  float64
	noise      float64
	seed       int64

	sequence  string
	fasta     string
	forward   string
	reverse   string
	probe     string
	dye       string
	multiplex bool

	denature float64
	anneal   float64
	extend   float64

	target     string
	preset     string
	configFile string

	noNoise bool

	save   bool
	image  string
	linear bool
}

// bind registers the flags describing one simulation input.
func (rf *runFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&rf.cycles, "cycles", config.DefaultCycles, "number of cycles")
	fs.Float64Var(&rf.efficiency, "efficiency", config.DefaultEfficiency, "amplification efficiency per cycle, (0, 1]")
	fs.Float64Var(&rf.threshold, "threshold", config.DefaultThreshold, "detection threshold")
	fs.Float64Var(&rf.noise, "noise", config.DefaultNoise, "noise amplitude; readings get uniform noise in ±noise")
	fs.Int64Var(&rf.seed, "seed", 0, "noise seed (0 picks a time-based seed)")

	fs.StringVar(&rf.sequence, "sequence", "", "template DNA sequence")
	fs.StringVar(&rf.fasta, "fasta", "", "read the sequence from a FASTA file (.gz accepted)")
	fs.StringVar(&rf.forward, "forward", "", "forward primer")
	fs.StringVar(&rf.reverse, "reverse", "", "reverse primer")
	fs.StringVar(&rf.probe, "probe", "", "probe sequence")
	fs.StringVar(&rf.dye, "dye", "", fmt.Sprintf("reporter dye %v", assay.Dyes))
	fs.BoolVar(&rf.multiplex, "multiplex", false, "multiplex mode")

	fs.Float64Var(&rf.denature, "denature", config.DefaultDenaturation, "denaturation temperature (°C)")
	fs.Float64Var(&rf.anneal, "anneal", config.DefaultAnnealing, "annealing temperature (°C)")
	fs.Float64Var(&rf.extend, "extend", config.DefaultExtension, "extension temperature (°C)")

	fs.StringVar(&rf.target, "target", "", "prefill the assay from a reference target")
	fs.StringVar(&rf.preset, "preset", "", fmt.Sprintf("run parameter preset %v", config.ListPresets()))
	fs.StringVar(&rf.configFile, "config", "", "config file path (yaml)")

	fs.BoolVar(&rf.noNoise, "no-noise", false, "disable noise")
}

func newRunCmd() *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one amplification curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, rf)
		},
	}
	rf.bind(cmd)
	cmd.Flags().BoolVar(&rf.save, "save", false, "save the run to the store")
	cmd.Flags().StringVar(&rf.image, "image", "", "also write the plot to this file (png, svg, pdf, jpg)")
	cmd.Flags().BoolVar(&rf.linear, "linear", false, "linear y axis instead of log10")
	return cmd
}

// buildForm layers the run inputs: built-in defaults, then a preset, then
// the config file, then a reference target, then flags set on the command
// line. Assay fields in the config file win over the target.
func buildForm(cmd *cobra.Command, rf *runFlags, db *reference.DB) (assay.Form, int64, error) {
	fl := cmd.Flags()
	cfg := config.DefaultConfig()

	if rf.preset != "" {
		p := config.GetPreset(rf.preset)
		if p == nil {
			return assay.Form{}, 0, fmt.Errorf("unknown preset: %s (available: %v)", rf.preset, config.ListPresets())
		}
		cfg = p
	}

	if rf.configFile != "" {
		loaded, err := config.Load(rf.configFile)
		if err != nil {
			return assay.Form{}, 0, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	form := cfg.ToForm()

	targetName := cfg.Target
	if fl.Changed("target") {
		targetName = rf.target
	}
	if targetName != "" {
		t, ok := db.Lookup(targetName)
		if !ok {
			return assay.Form{}, 0, fmt.Errorf("%w: %s (available: %s)", assay.ErrUnknownTarget, targetName, strings.Join(db.Names(), ", "))
		}
		assay.ApplyTarget(&form, t)
		cfg.ApplyAssay(&form)
	}

	if fl.Changed("sequence") && fl.Changed("fasta") {
		return assay.Form{}, 0, fmt.Errorf("--sequence and --fasta are mutually exclusive")
	}
	fastaPath := cfg.Assay.Fasta
	if fl.Changed("fasta") {
		fastaPath = rf.fasta
	}
	if fastaPath != "" && !fl.Changed("sequence") {
		seq, err := fasta.Load(fastaPath)
		if err != nil {
			return assay.Form{}, 0, fmt.Errorf("load sequence file: %w", err)
		}
		form.Sequence = seq
	}

	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	strs := []struct {
		flag string
		dst  *string
		val  string
	}{
		{"cycles", &form.Cycles, strconv.Itoa(rf.cycles)},
		{"efficiency", &form.Efficiency, ff(rf.efficiency)},
		{"threshold", &form.Threshold, ff(rf.threshold)},
		{"noise", &form.NoiseAmplitude, ff(rf.noise)},
		{"sequence", &form.Sequence, rf.sequence},
		{"forward", &form.Forward, rf.forward},
		{"reverse", &form.Reverse, rf.reverse},
		{"probe", &form.ProbeSequence, rf.probe},
		{"dye", &form.Dye, rf.dye},
		{"denature", &form.Denaturation, ff(rf.denature)},
		{"anneal", &form.Annealing, ff(rf.anneal)},
		{"extend", &form.Extension, ff(rf.extend)},
	}
	for _, s := range strs {
		if fl.Changed(s.flag) {
			*s.dst = s.val
		}
	}
	if fl.Changed("multiplex") {
		form.Multiplex = rf.multiplex
	}

	seed := rf.seed
	if !fl.Changed("seed") {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return form, seed, nil
}

// buildSettings resolves and validates the inputs for batch commands.
func buildSettings(cmd *cobra.Command, rf *runFlags) (*assay.Settings, int64, error) {
	form, seed, err := buildForm(cmd, rf, refs)
	if err != nil {
		return nil, 0, err
	}
	settings, err := form.Parse()
	if err != nil {
		return nil, 0, fmt.Errorf("invalid input: %w", err)
	}
	if rf.noNoise {
		settings.NoiseAmplitude = 0
	}
	return settings, seed, nil
}

func runSimulation(cmd *cobra.Command, rf *runFlags) error {
	form, seed, err := buildForm(cmd, rf, refs)
	if err != nil {
		return err
	}

	session := &assay.Session{Form: form, Noise: assay.SeededNoise(seed), NoNoise: rf.noNoise}

	logger.Debug("starting simulation", "cycles", form.Cycles, "efficiency", form.Efficiency, "seed", seed)
	start := time.Now()
	run, err := session.Run()
	if err != nil {
		var ve *assay.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("invalid input: %w", err)
		}
		return err
	}
	logger.Info("simulation complete", "ct", run.Result.CtLabel(), "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	opts := report.DefaultPlotOptions()
	opts.Log = !rf.linear
	fmt.Fprintln(out, report.ASCIIPlot(run.Result, opts))
	fmt.Fprintln(out)
	fmt.Fprint(out, report.Summary(run.Settings, run.Result, run.Metrics))

	if rf.save {
		st := storage.New(dataDir)
		runID, err := st.Save(run, seed)
		if err != nil {
			return err
		}
		logger.Info("run saved", "id", runID, "dir", dataDir)
		fmt.Fprintf(out, "\nrun id: %s\n", runID)
	}

	if rf.image != "" {
		imgOpts := report.DefaultImageOptions()
		imgOpts.Log = !rf.linear
		if err := report.SaveImage(rf.image, run.Result, imgOpts); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		fmt.Fprintf(out, "image: %s\n", rf.image)
	}

	return nil
}
