package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Meta   *RunMetadata         `json:"meta"`
	Ticks  []int                `json:"ticks"`
	Series map[string][]float64 `json:"series"`
}

// ExportJSON writes a run's metadata together with its series to out.
func (s *Store) ExportJSON(out io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, ticks, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Ticks: ticks, Series: series})
}
