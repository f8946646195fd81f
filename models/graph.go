package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Graph is a named chart payload: a categorical label axis plus one or
// more datasets.
type Graph struct {
	Title    string    `json:"title,omitempty"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// DatasetKind discriminates the two dataset shapes the backend emits.
type DatasetKind string

const (
	// DatasetScalar is a flat numeric series aligned with the labels.
	DatasetScalar DatasetKind = "scalar"
	// DatasetPoints is a series of {x, y[, r]} scatter points.
	DatasetPoints DatasetKind = "points"
)

// ScatterPoint is one {x, y[, r]} tuple.
type ScatterPoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	R *float64 `json:"r,omitempty"`
}

// Dataset is a discriminated union over the two wire shapes. The shape is
// resolved once, at decode time, so nothing downstream needs to duck-type
// the data array.
type Dataset struct {
	Label           string `json:"label,omitempty"`
	BorderColor     string `json:"border_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`

	Kind   DatasetKind
	Series []float64      // set when Kind == DatasetScalar
	Points []ScatterPoint // set when Kind == DatasetPoints
}

type datasetWire struct {
	Label           string          `json:"label,omitempty"`
	BorderColor     string          `json:"border_color,omitempty"`
	BackgroundColor string          `json:"background_color,omitempty"`
	Data            json.RawMessage `json:"data"`
}

// UnmarshalJSON resolves the data array's shape: an array of objects is a
// scatter series, anything else is a flat numeric series. An empty or
// absent array decodes as an empty scalar series.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	var w datasetWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	d.Label = w.Label
	d.BorderColor = w.BorderColor
	d.BackgroundColor = w.BackgroundColor
	d.Series = nil
	d.Points = nil

	var elems []json.RawMessage
	if len(w.Data) > 0 {
		if err := json.Unmarshal(w.Data, &elems); err != nil {
			return fmt.Errorf("dataset %q: data is not an array: %w", w.Label, err)
		}
	}
	if len(elems) == 0 {
		d.Kind = DatasetScalar
		d.Series = []float64{}
		return nil
	}

	if bytes.HasPrefix(bytes.TrimLeft(elems[0], " \t\r\n"), []byte("{")) {
		d.Kind = DatasetPoints
		if err := json.Unmarshal(w.Data, &d.Points); err != nil {
			return fmt.Errorf("dataset %q: bad scatter points: %w", w.Label, err)
		}
		return nil
	}
	d.Kind = DatasetScalar
	if err := json.Unmarshal(w.Data, &d.Series); err != nil {
		return fmt.Errorf("dataset %q: bad numeric series: %w", w.Label, err)
	}
	return nil
}

// MarshalJSON writes the dataset back in its original wire shape.
func (d Dataset) MarshalJSON() ([]byte, error) {
	var data any
	if d.Kind == DatasetPoints {
		data = d.Points
	} else {
		s := d.Series
		if s == nil {
			s = []float64{}
		}
		data = s
	}
	return json.Marshal(struct {
		Label           string `json:"label,omitempty"`
		BorderColor     string `json:"border_color,omitempty"`
		BackgroundColor string `json:"background_color,omitempty"`
		Data            any    `json:"data"`
	}{d.Label, d.BorderColor, d.BackgroundColor, data})
}

// Values returns the numeric series a chart primitive consumes: the series
// itself for a scalar dataset, the y-projection (in input order) for a
// scatter dataset.
func (d Dataset) Values() []float64 {
	if d.Kind != DatasetPoints {
		return d.Series
	}
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Y
	}
	return out
}
