package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/assay"
)

const (
	metadataFile = "metadata.json"
	curveFile    = "curve.csv"
)

// ErrNoRun is returned when a run id has no stored metadata.
var ErrNoRun = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Timestamp      time.Time          `json:"timestamp"`
	Seed           int64              `json:"seed"`
	Cycles         int                `json:"cycles"`
	Efficiency     float64            `json:"efficiency"`
	Threshold      float64            `json:"threshold"`
	NoiseAmplitude float64            `json:"noise_amplitude"`
	Ct             int                `json:"ct"`
	Thermal        assay.Thermal      `json:"thermal"`
	Assay          assay.Assay        `json:"assay"`
	Metrics        map[string]float64 `json:"metrics"`
}

func (m *RunMetadata) Settings() *assay.Settings {
	return &assay.Settings{
		Params:         amplify.Params{Cycles: m.Cycles, Efficiency: m.Efficiency, Threshold: m.Threshold},
		Thermal:        m.Thermal,
		Assay:          m.Assay,
		NoiseAmplitude: m.NoiseAmplitude,
	}
}

// CtLabel mirrors amplify.Result.CtLabel for listings.
func (m *RunMetadata) CtLabel() string {
	if m.Ct == amplify.NotReached {
		return "not reached"
	}
	return strconv.Itoa(m.Ct)
}

// Save writes metadata.json and curve.csv under a new run directory.
func (s *Store) Save(run *assay.Run, seed int64) (string, error) {
	if run == nil || run.Result == nil || run.Settings == nil {
		return "", fmt.Errorf("storage: nothing to save")
	}

	now := time.Now()
	runID, runDir, err := s.newRunDir(now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Timestamp:      now,
		Seed:           seed,
		Cycles:         run.Settings.Params.Cycles,
		Efficiency:     run.Settings.Params.Efficiency,
		Threshold:      run.Settings.Params.Threshold,
		NoiseAmplitude: run.Settings.NoiseAmplitude,
		Ct:             run.Result.Ct,
		Thermal:        run.Settings.Thermal,
		Assay:          run.Settings.Assay,
		Metrics:        run.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, curveFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := WriteCurveCSV(w, run.Result.Curve); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) newRunDir(now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}

	base := fmt.Sprintf("run_%s", now.Format("20060102_150405"))
	for i := 0; ; i++ {
		runID := base
		if i > 0 {
			runID = fmt.Sprintf("%s_%d", base, i)
		}
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", err
		}
	}
}

// WriteCurveCSV writes a cycle,fluorescence table and flushes w.
func WriteCurveCSV(w *csv.Writer, curve amplify.Curve) error {
	if err := w.Write([]string{"cycle", "fluorescence"}); err != nil {
		return err
	}
	for i, v := range curve {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoRun, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadCurve(runID string) (amplify.Curve, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, curveFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return amplify.Curve{}, nil
	}

	curve := make(amplify.Curve, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: bad reading %q: %w", runID, record[1], err)
		}
		curve = append(curve, v)
	}

	return curve, nil
}

// LoadRun reassembles a stored run.
func (s *Store) LoadRun(runID string) (*RunMetadata, *assay.Run, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	curve, err := s.LoadCurve(runID)
	if err != nil {
		return nil, nil, err
	}

	settings := meta.Settings()
	run := &assay.Run{
		Settings: settings,
		Result:   &amplify.Result{Params: settings.Params, Curve: curve, Ct: meta.Ct},
		Metrics:  meta.Metrics,
	}
	return meta, run, nil
}
