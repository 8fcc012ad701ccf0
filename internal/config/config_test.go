package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cycles != 40 {
		t.Errorf("expected 40 cycles, got %d", cfg.Cycles)
	}
	if cfg.Efficiency <= 0 || cfg.Efficiency > 1 {
		t.Error("efficiency should be in (0, 1]")
	}
	if cfg.Threshold <= 0 {
		t.Error("threshold should be positive")
	}
	if cfg.Assay.Dye != "" {
		t.Errorf("expected no dye override, got %s", cfg.Assay.Dye)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ideal")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Efficiency != 1.0 {
		t.Errorf("expected efficiency 1.0, got %f", cfg.Efficiency)
	}

	cfg.Cycles = 1
	if Presets["ideal"].Cycles == 1 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Target = "SARS-CoV-2"
	cfg.Cycles = 35
	cfg.Seed = 42
	cfg.Assay.Multiplex = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Cycles != 35 || loaded.Seed != 42 || loaded.Target != "SARS-CoV-2" || !loaded.Assay.Multiplex {
		t.Errorf("unexpected config %+v", loaded)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("cycles: 12\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Cycles != 12 {
		t.Errorf("expected 12 cycles, got %d", loaded.Cycles)
	}
	if loaded.Efficiency != DefaultEfficiency || loaded.Thermal.Annealing != DefaultAnnealing {
		t.Errorf("expected defaults for unset fields, got %+v", loaded)
	}
}

func TestToFormParses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assay.Sequence = "ACGTACGT"
	cfg.Assay.Forward = "ACG"
	cfg.Assay.Reverse = "CGT"

	s, err := cfg.ToForm().Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Params.Cycles != 40 || s.Params.Efficiency != 0.95 || s.Params.Threshold != 0.1 {
		t.Errorf("unexpected params %+v", s.Params)
	}
	if s.Thermal.Extension != 72 {
		t.Errorf("unexpected thermal %+v", s.Thermal)
	}
}

func TestApplyAssayKeepsUnsetFields(t *testing.T) {
	f := DefaultConfig().ToForm()
	f.Sequence = "TTTT"
	f.Dye = "HEX"

	cfg := DefaultConfig()
	cfg.Assay.Forward = "AAA"
	cfg.ApplyAssay(&f)

	if f.Sequence != "TTTT" || f.Dye != "HEX" {
		t.Errorf("unset config fields overwrote the form: %+v", f)
	}
	if f.Forward != "AAA" {
		t.Errorf("forward = %q, want AAA", f.Forward)
	}
}
