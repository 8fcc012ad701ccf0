package storage

import (
	"encoding/json"
	"io"
	"time"

	"github.com/san-kum/qpcrsim/internal/assay"
)

type ExportData struct {
	ID             string             `json:"id,omitempty"`
	Timestamp      time.Time          `json:"timestamp"`
	Seed           int64              `json:"seed"`
	Cycles         int                `json:"cycles"`
	Efficiency     float64            `json:"efficiency"`
	Threshold      float64            `json:"threshold"`
	NoiseAmplitude float64            `json:"noise_amplitude"`
	Ct             *int               `json:"ct"`
	Curve          []float64          `json:"curve"`
	Thermal        assay.Thermal      `json:"thermal"`
	Assay          assay.Assay        `json:"assay"`
	Metrics        map[string]float64 `json:"metrics"`
}

// NewExport flattens a run for JSON output. A missing Ct encodes as null.
func NewExport(meta *RunMetadata, run *assay.Run) ExportData {
	data := ExportData{
		Cycles:         run.Settings.Params.Cycles,
		Efficiency:     run.Settings.Params.Efficiency,
		Threshold:      run.Settings.Params.Threshold,
		NoiseAmplitude: run.Settings.NoiseAmplitude,
		Curve:          run.Result.Curve.Clone(),
		Thermal:        run.Settings.Thermal,
		Assay:          run.Settings.Assay,
		Metrics:        run.Metrics,
	}
	if run.Result.Reached() {
		ct := run.Result.Ct
		data.Ct = &ct
	}
	if meta != nil {
		data.ID = meta.ID
		data.Timestamp = meta.Timestamp
		data.Seed = meta.Seed
	}
	return data
}

func ExportJSON(w io.Writer, meta *RunMetadata, run *assay.Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExport(meta, run))
}
