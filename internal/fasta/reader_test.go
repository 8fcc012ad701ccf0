package fasta

import (
	"compress/gzip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const interleaved = `>seq1 first record
ACGT
  TTGA  
>seq2
ggcc
`

func TestRead_StripsHeaders(t *testing.T) {
	seq, err := Read(strings.NewReader(interleaved))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if seq != "ACGTTTGAggcc" {
		t.Errorf("unexpected sequence %q", seq)
	}
	if strings.ContainsAny(seq, "\r\n>") {
		t.Errorf("sequence contains header or newline characters: %q", seq)
	}
}

func TestRead_Cases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"headers only", ">a\n>b\n", ""},
		{"no header", "ACGT\nACGT", "ACGTACGT"},
		{"crlf", ">x\r\nAC\r\nGT\r\n", "ACGT"},
		{"blank lines", "AC\n\n\nGT\n", "ACGT"},
		{"no validation", "ACGT-NNxx*\n", "ACGT-NNxx*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Read() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "target.fa")
	if err := os.WriteFile(plain, []byte(interleaved), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	gz := filepath.Join(dir, "target.fa.gz")
	fh, err := os.Create(gz)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(interleaved)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()

	for _, path := range []string{plain, gz} {
		seq, err := Load(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		if seq != "ACGTTTGAggcc" {
			t.Errorf("%s: unexpected sequence %q", path, seq)
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.fasta"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}
