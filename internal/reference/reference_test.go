package reference

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	db := Default()
	if db.Len() != 3 {
		t.Errorf("expected 3 built-in targets, got %d", db.Len())
	}

	sars, ok := db.Lookup("SARS-CoV-2")
	if !ok {
		t.Fatal("expected SARS-CoV-2 target")
	}
	if sars.Name != "SARS-CoV-2" {
		t.Errorf("expected name to be filled from key, got %q", sars.Name)
	}
	if sars.Probe.Dye != "FAM" || sars.Probe.Quencher != "BHQ1" {
		t.Errorf("unexpected probe %+v", sars.Probe)
	}

	if _, ok := db.Lookup(ExampleName); !ok {
		t.Error("expected example target")
	}
}

func TestNamesSortedAndCopied(t *testing.T) {
	db := Default()
	names := db.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}

	names[0] = "mutated"
	if db.Names()[0] == "mutated" {
		t.Error("Names must return a copy")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	db := Default()
	tgt, _ := db.Lookup(ExampleName)
	tgt.Forward = "XXXX"

	again, _ := db.Lookup(ExampleName)
	if again.Forward == "XXXX" {
		t.Error("lookup result aliases the database")
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	db, err := Load(filepath.Join(t.TempDir(), "targets.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if db.Len() != Default().Len() {
		t.Errorf("expected built-in set, got %d targets", db.Len())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	data := `
Influenza A:
  sequence: AAGACCAATCCTGTCACCTCTGA
  forward: GACCRATCCTGTCACCTCTGAC
  reverse: AGGGCATTYTGGACAAAKCGTCTA
  probe:
    sequence: TGCAGTCCTCGCTCACTGGGCACG
    dye: FAM
    quencher: BHQ1
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	db, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if db.Len() != 1 {
		t.Fatalf("expected 1 target, got %d", db.Len())
	}
	tgt, ok := db.Lookup("Influenza A")
	if !ok {
		t.Fatal("expected Influenza A")
	}
	if tgt.Reverse != "AGGGCATTYTGGACAAAKCGTCTA" {
		t.Errorf("unexpected reverse primer %q", tgt.Reverse)
	}
}

func TestParse_JSON(t *testing.T) {
	db, err := Parse([]byte(`{"HIV-1": {"sequence": "ACGT", "forward": "AC", "reverse": "GT", "probe": {"dye": "ROX"}}}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	tgt, ok := db.Lookup("HIV-1")
	if !ok || tgt.Probe.Dye != "ROX" {
		t.Errorf("unexpected target %+v", tgt)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("- just\n- a list\n")); err == nil {
		t.Error("expected error for non-mapping document")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	db, err := Parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if db.Len() != Default().Len() {
		t.Errorf("expected %d targets, got %d", Default().Len(), db.Len())
	}
}

func TestNilDB(t *testing.T) {
	var db *DB
	if db.Len() != 0 || db.Names() != nil {
		t.Error("nil db should be empty")
	}
	if _, ok := db.Lookup("x"); ok {
		t.Error("nil db lookup should miss")
	}
}
