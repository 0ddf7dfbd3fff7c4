package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/This-Is-Prince/learning-physics/internal/sim"
)

// Trace is the JSON document written for a run.
type Trace struct {
	Preset    string             `json:"preset,omitempty"`
	Frames    int                `json:"frames"`
	Refreshes int                `json:"refreshes"`
	AtRest    bool               `json:"at_rest"`
	Samples   []sim.Sample       `json:"samples"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewTrace(preset string, result *sim.Result) Trace {
	return Trace{
		Preset:    preset,
		Frames:    result.Frames,
		Refreshes: result.Refreshes,
		AtRest:    result.AtRest,
		Samples:   result.Samples,
		Metrics:   result.Metrics,
	}
}

func WriteJSON(w io.Writer, trace Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(trace)
}

var csvHeader = []string{"frame", "time", "dt", "x", "y", "vx", "vy", "energy", "bounced", "at_rest"}

// WriteCSV writes one row per sample after a header row.
func WriteCSV(w io.Writer, samples []sim.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Frame),
			f(s.Time),
			f(s.DT),
			f(s.X),
			f(s.Y),
			f(s.VX),
			f(s.VY),
			f(s.Energy),
			strconv.FormatBool(s.Bounced),
			strconv.FormatBool(s.AtRest),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
