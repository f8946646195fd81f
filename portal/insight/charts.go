package insight

import "mavhu/models"

// ChartData is the shape chart primitives consume: labels plus flat
// numeric datasets with resolved colors.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"border_color,omitempty"`
	BackgroundColor string    `json:"background_color,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
}

// palette cycles by dataset position; a dataset's own colors always win.
var palette = []string{
	"#2f9e44", // green
	"#1971c2", // blue
	"#e8590c", // orange
	"#9c36b5", // purple
	"#f08c00", // amber
	"#0c8599", // teal
}

// normalize flattens every dataset to a numeric series (scatter points are
// projected to their y values, order preserved). An empty graph comes back
// as empty labels and datasets, never nil fields.
func normalize(g models.Graph) ChartData {
	out := ChartData{
		Labels:   g.Labels,
		Datasets: make([]ChartDataset, 0, len(g.Datasets)),
	}
	if out.Labels == nil {
		out.Labels = []string{}
	}
	for _, d := range g.Datasets {
		vals := d.Values()
		if vals == nil {
			vals = []float64{}
		}
		out.Datasets = append(out.Datasets, ChartDataset{
			Label:           d.Label,
			Data:            vals,
			BorderColor:     d.BorderColor,
			BackgroundColor: d.BackgroundColor,
		})
	}
	return out
}

// LineChart prepares a graph for a line/area primitive.
func LineChart(g models.Graph) ChartData {
	out := normalize(g)
	for i := range out.Datasets {
		d := &out.Datasets[i]
		if d.BorderColor == "" {
			d.BorderColor = palette[i%len(palette)]
		}
		if d.BackgroundColor == "" {
			d.BackgroundColor = d.BorderColor
		}
	}
	return out
}

// BarChart prepares a graph for a bar primitive.
func BarChart(g models.Graph) ChartData {
	out := normalize(g)
	for i := range out.Datasets {
		d := &out.Datasets[i]
		if d.BackgroundColor == "" {
			d.BackgroundColor = palette[i%len(palette)]
		}
		if d.BorderColor == "" {
			d.BorderColor = d.BackgroundColor
		}
	}
	return out
}

// PieChart prepares a graph for a pie/doughnut primitive. Slice colors
// live on SliceColors, one per label, cycling the palette.
type PieChartData struct {
	ChartData
	SliceColors []string `json:"slice_colors"`
}

func PieChart(g models.Graph) PieChartData {
	out := PieChartData{ChartData: normalize(g)}
	out.SliceColors = make([]string, len(out.Labels))
	for i := range out.Labels {
		out.SliceColors[i] = palette[i%len(palette)]
	}
	return out
}
