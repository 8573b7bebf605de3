package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/experiment"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/trajectory"
)

// Document is the JSON form of a run.
type Document struct {
	Inputs       experiment.Inputs     `json:"inputs"`
	Result       collision.Result      `json:"result"`
	Conservation []metrics.Quantity    `json:"conservation"`
	Conserved    bool                  `json:"conserved"`
	Samples      int                   `json:"samples"`
	Trajectory   trajectory.Trajectory `json:"trajectory"`
}

// NewDocument collects everything worth exporting from run.
func NewDocument(run *experiment.Run) (Document, error) {
	if run == nil {
		return Document{}, ErrNoRun
	}
	qs := run.Conservation()
	return Document{
		Inputs:       run.Inputs,
		Result:       run.Result,
		Conservation: qs,
		Conserved:    metrics.AllConserved(qs, metrics.DefaultTolerance),
		Samples:      len(run.Trajectory),
		Trajectory:   run.Trajectory,
	}, nil
}

// WriteJSON encodes run as indented JSON.
func WriteJSON(w io.Writer, run *experiment.Run) error {
	doc, err := NewDocument(run)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// SaveJSON writes run to path, replacing any existing file.
func SaveJSON(path string, run *experiment.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteJSON(file, run); err != nil {
		return err
	}
	return file.Close()
}
