package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mavhu/models"
)

func scalarGraph() models.Graph {
	return models.Graph{
		Labels: []string{"Jan", "Feb", "Mar"},
		Datasets: []models.Dataset{
			{Label: "a", Kind: models.DatasetScalar, Series: []float64{1, 2, 3}},
			{Label: "b", Kind: models.DatasetScalar, Series: []float64{4, 5, 6}},
		},
	}
}

func TestLineChartScalarPassthrough(t *testing.T) {
	out := LineChart(scalarGraph())

	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, out.Labels)
	require.Len(t, out.Datasets, 2)
	assert.Equal(t, []float64{1, 2, 3}, out.Datasets[0].Data)
	assert.Equal(t, []float64{4, 5, 6}, out.Datasets[1].Data)

	// default colors cycle the palette by dataset position
	assert.Equal(t, palette[0], out.Datasets[0].BorderColor)
	assert.Equal(t, palette[1], out.Datasets[1].BorderColor)
}

func TestBarChartScatterProjection(t *testing.T) {
	g := models.Graph{
		Labels: []string{"q1", "q2", "q3"},
		Datasets: []models.Dataset{{
			Label: "pts",
			Kind:  models.DatasetPoints,
			Points: []models.ScatterPoint{
				{X: 10, Y: 0.3}, {X: 20, Y: 0.9}, {X: 30, Y: 0.6},
			},
		}},
	}
	out := BarChart(g)
	require.Len(t, out.Datasets, 1)
	assert.Equal(t, []float64{0.3, 0.9, 0.6}, out.Datasets[0].Data)
}

func TestTransformersKeepExistingColors(t *testing.T) {
	g := scalarGraph()
	g.Datasets[0].BorderColor = "#abcdef"
	g.Datasets[0].BackgroundColor = "#123456"

	out := LineChart(g)
	assert.Equal(t, "#abcdef", out.Datasets[0].BorderColor)
	assert.Equal(t, "#123456", out.Datasets[0].BackgroundColor)

	bar := BarChart(g)
	assert.Equal(t, "#123456", bar.Datasets[0].BackgroundColor)
}

func TestTransformersEmptyGraph(t *testing.T) {
	empty := models.Graph{}

	line := LineChart(empty)
	assert.Equal(t, []string{}, line.Labels)
	assert.Equal(t, []ChartDataset{}, line.Datasets)

	bar := BarChart(empty)
	assert.Empty(t, bar.Datasets)

	pie := PieChart(empty)
	assert.Equal(t, []string{}, pie.Labels)
	assert.Empty(t, pie.Datasets)
	assert.Empty(t, pie.SliceColors)
}

func TestPaletteCyclesModuloLength(t *testing.T) {
	g := models.Graph{Labels: []string{"x"}}
	for i := 0; i < len(palette)+2; i++ {
		g.Datasets = append(g.Datasets, models.Dataset{Kind: models.DatasetScalar, Series: []float64{1}})
	}
	out := LineChart(g)
	assert.Equal(t, palette[0], out.Datasets[len(palette)].BorderColor)
	assert.Equal(t, palette[1], out.Datasets[len(palette)+1].BorderColor)
}

func TestPieChartSliceColors(t *testing.T) {
	g := models.Graph{
		Labels:   []string{"water", "energy", "waste"},
		Datasets: []models.Dataset{{Kind: models.DatasetScalar, Series: []float64{40, 35, 25}}},
	}
	out := PieChart(g)
	require.Len(t, out.SliceColors, 3)
	assert.Equal(t, palette[0], out.SliceColors[0])
	assert.Equal(t, palette[2], out.SliceColors[2])
	assert.Equal(t, []float64{40, 35, 25}, out.Datasets[0].Data)
}
