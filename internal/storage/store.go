// Package storage persists runs under a data directory, one subdirectory per
// run holding metadata.json and trajectory.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/nkoval/eulersim/internal/ode"
)

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
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	A         float64            `json:"a"`
	X0        float64            `json:"x0"`
	TMin      float64            `json:"t_min"`
	TMax      float64            `json:"t_max"`
	Step      float64            `json:"step"`
	Points    int                `json:"points"`
	ElapsedNS int64              `json:"elapsed_ns"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one run to disk and returns its id. The csv carries the exact
// reference and pointwise absolute error next to each numeric value so stored
// runs can be plotted and exported without recomputing the model.
func (s *Store) Save(cfg ode.Config, res *ode.Result, sum ode.Summary, ref ode.ExactSolution) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		A:         cfg.A,
		X0:        cfg.X0,
		TMin:      cfg.TMin,
		TMax:      cfg.TMax,
		Step:      res.H,
		Points:    len(res.Times),
		ElapsedNS: res.Elapsed.Nanoseconds(),
		Metrics: map[string]float64{
			"rms":         sum.RMS,
			"rms_percent": sum.RMSPercent,
		},
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"t", "numeric", "exact", "abs_err"}); err != nil {
		return "", err
	}
	for i, t := range res.Times {
		exact := ref.At(t)
		diff := res.Values[i] - exact
		if diff < 0 {
			diff = -diff
		}
		row := []string{
			strconv.FormatFloat(t, 'g', -1, 64),
			strconv.FormatFloat(res.Values[i], 'g', -1, 64),
			strconv.FormatFloat(exact, 'g', -1, 64),
			strconv.FormatFloat(diff, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]*RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []*RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// Trajectory reloads the stored grid, numeric values, and exact reference.
func (s *Store) Trajectory(runID string) (times, values, exact []float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(rows) < 1 {
		return nil, nil, nil, fmt.Errorf("empty trajectory for run %s", runID)
	}

	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		x, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		times = append(times, t)
		values = append(values, v)
		exact = append(exact, x)
	}
	return times, values, exact, nil
}

// CopyCSV streams the raw stored csv to w.
func (s *Store) CopyCSV(runID string, w io.Writer) error {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
