package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/qpcrsim/internal/config"
)

func newTargetsCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "list reference targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				data, err := refs.Marshal()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLENGTH\tFORWARD\tREVERSE\tPROBE\tDYE")
			for _, name := range refs.Names() {
				t, _ := refs.Lookup(name)
				probe := t.Probe.Sequence
				if probe == "" {
					probe = "-"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
					name, len(t.Sequence), t.Forward, t.Reverse, probe, t.Probe.Dye)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the targets as a reference file")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list run parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCYCLES\tEFF\tTHRESHOLD\tNOISE\tANNEAL")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%g\t%g\n",
					name, p.Cycles, p.Efficiency, p.Threshold, p.Noise, p.Thermal.Annealing)
			}
			return w.Flush()
		},
	}
}
