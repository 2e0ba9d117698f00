package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	ID      string             `json:"id"`
	A       float64            `json:"a"`
	X0      float64            `json:"x0"`
	TMin    float64            `json:"t_min"`
	TMax    float64            `json:"t_max"`
	Step    float64            `json:"step"`
	Points  int                `json:"points"`
	Times   []float64          `json:"times"`
	Values  []float64          `json:"values"`
	Exact   []float64          `json:"exact"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run as a single JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, values, exact, err := s.Trajectory(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		ID:      meta.ID,
		A:       meta.A,
		X0:      meta.X0,
		TMin:    meta.TMin,
		TMax:    meta.TMax,
		Step:    meta.Step,
		Points:  len(times),
		Times:   times,
		Values:  values,
		Exact:   exact,
		Metrics: meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
