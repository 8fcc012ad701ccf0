package assay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/reference"
)

func deterministicSession() *Session {
	s := NewSession()
	s.Noise = ZeroNoise
	s.Form = validForm()
	return s
}

func TestSessionRun(t *testing.T) {
	s := deterministicSession()
	s.Form.Cycles = "5"
	s.Form.Efficiency = "1"
	s.Form.Threshold = "10"

	run, err := s.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if run.Result.Ct != 3 {
		t.Errorf("expected ct 3, got %d", run.Result.Ct)
	}
	if s.Last() != run {
		t.Error("expected run to be stored")
	}
	if run.Metrics["end_point"] != 32 {
		t.Errorf("expected end point 32, got %v", run.Metrics["end_point"])
	}
}

func TestSessionRun_ReplacesPrevious(t *testing.T) {
	s := deterministicSession()
	first, err := s.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	s.Form.Cycles = "10"
	second, err := s.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if s.Last() != second || s.Last() == first {
		t.Error("expected the second run to replace the first")
	}
	if len(s.Last().Result.Curve) != 10 {
		t.Errorf("expected 10 readings, got %d", len(s.Last().Result.Curve))
	}
}

func TestSessionRun_NoNoiseRecordsZeroAmplitude(t *testing.T) {
	s := NewSession()
	s.Form = validForm()
	s.Form.Cycles = "5"
	s.Form.Efficiency = "1"
	s.Form.NoiseAmplitude = "0.5"
	s.Noise = SeededNoise(3)
	s.NoNoise = true

	run, err := s.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if run.Settings.NoiseAmplitude != 0 {
		t.Errorf("noise amplitude = %v, want 0", run.Settings.NoiseAmplitude)
	}
	want := []float64{2, 4, 8, 16, 32}
	for i, v := range run.Result.Curve {
		if v != want[i] {
			t.Errorf("curve[%d] = %v, want %v", i, v, want[i])
		}
	}
	if s.Form.NoiseAmplitude != "0.5" {
		t.Errorf("form noise changed to %q", s.Form.NoiseAmplitude)
	}
}

func TestSessionRun_ValidationKeepsPrevious(t *testing.T) {
	s := deterministicSession()
	prev, err := s.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	s.Form.Efficiency = "0"
	run, err := s.Run()
	if run != nil {
		t.Error("expected no run")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != FieldEfficiency {
		t.Errorf("expected efficiency validation error, got %v", err)
	}
	if s.Last() != prev {
		t.Error("previous run must survive a validation failure")
	}
}

type panicNoise struct{}

func (panicNoise) Sample() float64 { panic("rng exploded") }

func TestSessionRun_RecoversUnexpectedFailure(t *testing.T) {
	s := deterministicSession()
	s.Noise = func(float64) amplify.Noise { return panicNoise{} }

	run, err := s.Run()
	if run != nil {
		t.Error("expected no partial result")
	}
	if !errors.Is(err, ErrSimulationFailed) {
		t.Errorf("expected ErrSimulationFailed, got %v", err)
	}
	if s.Last() != nil {
		t.Error("expected nothing stored")
	}
}

func TestSessionRun_SeededNoiseIsReproducible(t *testing.T) {
	a := deterministicSession()
	a.Noise = SeededNoise(7)
	b := deterministicSession()
	b.Noise = SeededNoise(7)

	ra, err := a.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	rb, err := b.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for i := range ra.Result.Curve {
		if ra.Result.Curve[i] != rb.Result.Curve[i] {
			t.Fatalf("reading %d differs", i)
		}
	}
}

func TestSessionClear(t *testing.T) {
	s := deterministicSession()
	if _, err := s.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	s.Clear()
	if s.Form.Sequence != "" || s.Form.Forward != "" || s.Form.Reverse != "" || s.Form.ProbeSequence != "" {
		t.Errorf("expected assay fields cleared, got %+v", s.Form)
	}
	if s.Last() != nil {
		t.Error("expected result cleared")
	}
	if s.Form.Cycles != "40" {
		t.Errorf("run parameters should survive clear, got cycles %q", s.Form.Cycles)
	}
}

func TestSessionLoadExample(t *testing.T) {
	s := NewSession()
	s.Form.Multiplex = true

	if err := s.LoadExample(reference.Default(), "RNase P"); err != nil {
		t.Fatalf("load example failed: %v", err)
	}
	if s.Form.Forward != "AGATTTGGACCTGCGAGCG" {
		t.Errorf("unexpected forward primer %q", s.Form.Forward)
	}
	if s.Form.Dye != "HEX" {
		t.Errorf("expected dye from target, got %s", s.Form.Dye)
	}
	if s.Form.Multiplex {
		t.Error("expected multiplex cleared")
	}

	err := s.LoadExample(reference.Default(), "Ebola")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestSessionLoadSequenceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seq.fasta")
	if err := os.WriteFile(path, []byte(">hdr\nACGT\nTTAA\n>hdr2\nGG\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := NewSession()
	s.Form.Sequence = "OLD"
	if err := s.LoadSequenceFile(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Form.Sequence != "ACGTTTAAGG" {
		t.Errorf("unexpected sequence %q", s.Form.Sequence)
	}
}

func TestSessionLoadSequenceFile_FailureKeepsInputs(t *testing.T) {
	s := deterministicSession()
	before := s.Form

	err := s.LoadSequenceFile(filepath.Join(t.TempDir(), "missing.fa"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected underlying cause in chain, got %v", err)
	}
	if s.Form != before {
		t.Error("form changed after failed load")
	}
}
