// Package export writes headless runs to disk: body traces as JSON, CSV or
// SVG, and rendered frames as SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/orrery/internal/orbit"
)

// Sample is a body's orbital state after one frame.
type Sample struct {
	Frame uint64  `json:"frame"`
	Angle float64 `json:"angle"`
	Speed float64 `json:"speed"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
}

type Trace struct {
	Body    string   `json:"body"`
	Radius  float64  `json:"radius"`
	Seed    int64    `json:"seed"`
	Samples []Sample `json:"samples"`
}

func NewTrace(b *orbit.Body, seed int64) *Trace {
	return &Trace{Body: b.Name(), Radius: b.Radius(), Seed: seed}
}

// Record appends b's current state.
func (t *Trace) Record(frame uint64, b *orbit.Body) {
	p := b.Position()
	t.Samples = append(t.Samples, Sample{
		Frame: frame,
		Angle: b.Angle(),
		Speed: b.CurrentSpeed(),
		X:     p.X,
		Z:     p.Z,
	})
}

// X returns the x coordinate of every sample.
func (t *Trace) X() []float64 {
	xs := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		xs[i] = s.X
	}
	return xs
}

func WriteJSON(w io.Writer, t *Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func WriteCSV(w io.Writer, t *Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "angle", "speed", "x", "z"}); err != nil {
		return err
	}
	for _, s := range t.Samples {
		row := []string{
			strconv.FormatUint(s.Frame, 10),
			strconv.FormatFloat(s.Angle, 'f', 6, 64),
			strconv.FormatFloat(s.Speed, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Z, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile picks the format from the path's extension.
func WriteFile(path string, t *Trace) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".csv" && ext != ".svg" {
		return fmt.Errorf("export: unsupported format %q (want .json, .csv or .svg)", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch ext {
	case ".json":
		err = WriteJSON(file, t)
	case ".csv":
		err = WriteCSV(file, t)
	default:
		_, err = io.WriteString(file, TraceToSVG(t, 480, "#00ccff"))
	}
	if err != nil {
		return err
	}
	return file.Close()
}
