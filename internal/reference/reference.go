// Package reference holds named assay targets used to prefill the input form.
//
// A target file is a YAML (or JSON) mapping of target name to sequence,
// primer pair and probe:
//
//	SARS-CoV-2:
//	  sequence: GACCCCAAAATCAGCGAAAT...
//	  forward: GACCCCAAAATCAGCGAAAT
//	  reverse: TCTGGTTACTGCCAGTTGAATCTG
//	  probe:
//	    sequence: ACCCCGCATTACGTTTGGTGGACC
//	    dye: FAM
//	    quencher: BHQ1
package reference

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type Probe struct {
	Sequence string `yaml:"sequence" json:"sequence"`
	Dye      string `yaml:"dye" json:"dye"`
	Quencher string `yaml:"quencher" json:"quencher"`
}

type Target struct {
	Name     string `yaml:"-" json:"name"`
	Sequence string `yaml:"sequence" json:"sequence"`
	Forward  string `yaml:"forward" json:"forward"`
	Reverse  string `yaml:"reverse" json:"reverse"`
	Probe    Probe  `yaml:"probe" json:"probe"`
}

// DB is a read-only set of targets. The zero value is empty.
type DB struct {
	targets map[string]Target
	names   []string
}

func newDB(targets map[string]Target) *DB {
	db := &DB{
		targets: make(map[string]Target, len(targets)),
		names:   make([]string, 0, len(targets)),
	}
	for name, t := range targets {
		t.Name = name
		db.targets[name] = t
		db.names = append(db.names, name)
	}
	sort.Strings(db.names)
	return db
}

// Load reads a target file. A missing file is not an error: the built-in
// set is returned instead.
func Load(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read reference file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a target mapping.
func Parse(data []byte) (*DB, error) {
	var raw map[string]Target
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse reference file: %w", err)
	}
	for name := range raw {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("parse reference file: empty target name")
		}
	}
	return newDB(raw), nil
}

// Lookup returns a copy of the named target.
func (db *DB) Lookup(name string) (Target, bool) {
	if db == nil {
		return Target{}, false
	}
	t, ok := db.targets[name]
	return t, ok
}

// Names lists target names in sorted order.
func (db *DB) Names() []string {
	if db == nil {
		return nil
	}
	out := make([]string, len(db.names))
	copy(out, db.names)
	return out
}

func (db *DB) Len() int {
	if db == nil {
		return 0
	}
	return len(db.names)
}

// Marshal encodes the set back into the file format.
func (db *DB) Marshal() ([]byte, error) {
	if db == nil {
		return yaml.Marshal(map[string]Target{})
	}
	return yaml.Marshal(db.targets)
}
