package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func threeSeries() []models.ValueMapping {
	return []models.ValueMapping{
		{Column: "revenue", Label: "Revenue", Type: models.TypeNumeric, Color: "#ff0000"},
		{Column: "cost", Type: models.TypeNumeric},
		{Type: models.TypeNumeric},
	}
}

func salesRows() []models.Row {
	return []models.Row{
		{"region": "north", "revenue": 120.5, "cost": "80"},
		{"region": "south", "revenue": nil, "cost": 95},
	}
}

func TestBuildDatasetsCount(t *testing.T) {
	tests := []struct {
		chartType models.ChartType
		expected  int
	}{
		{models.ChartPie, 1},
		{models.ChartDoughnut, 1},
		{models.ChartBar, 3},
		{models.ChartLine, 3},
		{models.ChartScatter, 3},
		{models.ChartBubble, 3},
		{models.ChartRadar, 3},
	}

	for _, tt := range tests {
		m := models.ColumnMapping{ChartType: tt.chartType, LabelColumn: "region", ValueMappings: threeSeries()}
		result := BuildDatasets(m, salesRows(), Formatter{})
		assert.Len(t, result, tt.expected, "BuildDatasets(%s)", tt.chartType)
	}
}

func TestBuildDatasetsProportional(t *testing.T) {
	m := models.ColumnMapping{ChartType: models.ChartPie, LabelColumn: "region", ValueMappings: threeSeries()}

	result := BuildDatasets(m, salesRows(), Formatter{})
	require.Len(t, result, 1)
	ds := result[0]
	assert.Equal(t, "Revenue", ds.Label)
	assert.Equal(t, []models.Value{models.Number(120.5), models.Number(0)}, ds.Data)
	assert.Equal(t, models.DefaultBorderWidth, ds.BorderWidth)
	assert.Empty(t, ds.BackgroundColor, "pie colours are assigned downstream")
	assert.Empty(t, ds.BorderColor)

	m.ValueMappings = []models.ValueMapping{{Column: "cost", Type: models.TypeNumeric}}
	result = BuildDatasets(m, salesRows(), Formatter{})
	require.Len(t, result, 1)
	assert.Equal(t, models.DefaultDatasetLabel, result[0].Label, "pie label does not fall back to the column")
}

func TestBuildDatasetsCartesian(t *testing.T) {
	m := models.ColumnMapping{ChartType: models.ChartBar, LabelColumn: "region", ValueMappings: threeSeries()}

	result := BuildDatasets(m, salesRows(), Formatter{})
	require.Len(t, result, 3)

	assert.Equal(t, "Revenue", result[0].Label)
	assert.Equal(t, models.ColorSpec{"#ff0000"}, result[0].BackgroundColor)
	assert.Equal(t, models.ColorSpec{"#ff0000"}, result[0].BorderColor)

	assert.Equal(t, "cost", result[1].Label)
	assert.Equal(t, []models.Value{models.Number(80), models.Number(95)}, result[1].Data)
	assert.Empty(t, result[1].BackgroundColor)

	assert.Equal(t, models.DefaultDatasetLabel, result[2].Label)
	assert.Equal(t, []models.Value{models.Number(0), models.Number(0)}, result[2].Data)

	for _, ds := range result {
		assert.Equal(t, models.DefaultBorderWidth, ds.BorderWidth)
	}
}

func TestBuildDatasetsEmptyRows(t *testing.T) {
	m := models.ColumnMapping{ChartType: models.ChartLine, LabelColumn: "region", ValueMappings: threeSeries()}

	result := BuildDatasets(m, nil, Formatter{})
	require.Len(t, result, 3)
	for _, ds := range result {
		assert.NotNil(t, ds.Data)
		assert.Empty(t, ds.Data)
	}
	assert.Equal(t, "Revenue", result[0].Label)
	assert.Equal(t, models.ColorSpec{"#ff0000"}, result[0].BackgroundColor)
}

func TestBuildDatasetsNoValueMappings(t *testing.T) {
	for _, ct := range models.ChartTypes {
		m := models.ColumnMapping{ChartType: ct, LabelColumn: "region"}
		assert.Nil(t, BuildDatasets(m, salesRows(), Formatter{}), "BuildDatasets(%s)", ct)
	}
}

func TestBuildDatasetsPreservesRowOrder(t *testing.T) {
	rows := []models.Row{{"v": 3}, {"v": 1}, {"v": 2}, {"v": 1}}
	m := models.ColumnMapping{
		ChartType:     models.ChartLine,
		ValueMappings: []models.ValueMapping{{Column: "v", Type: models.TypeNumeric}},
	}

	result := BuildDatasets(m, rows, Formatter{})
	require.Len(t, result, 1)
	assert.Equal(t, []models.Value{models.Number(3), models.Number(1), models.Number(2), models.Number(1)}, result[0].Data)
	assert.Equal(t, []models.Row{{"v": 3}, {"v": 1}, {"v": 2}, {"v": 1}}, rows, "rows must not be modified")
}
