package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// writeSalesWorkbook saves a workbook with a column chart on the data sheet
// and a pie chart on a separate sheet.
func writeSalesWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	data := [][]any{
		{"month", "sales", "cost"},
		{"Jan", 100, 60},
		{"Feb", 150, 70},
		{"Mar", 120, 65},
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	require.NoError(t, f.AddChart("Sheet1", "E1", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$B$1", Categories: "Sheet1!$A$2:$A$4", Values: "Sheet1!$B$2:$B$4"},
			{Name: "Cost", Categories: "Sheet1!$A$2:$A$4", Values: "Sheet1!$C$2:$C$4"},
		},
		Title: []excelize.RichTextRun{{Text: "Monthly sales"}},
	}))

	_, err := f.NewSheet("Charts")
	require.NoError(t, err)
	require.NoError(t, f.AddChart("Charts", "A1", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$C$1", Categories: "Sheet1!$A$2:$A$4", Values: "Sheet1!$C$2:$C$4"},
		},
	}))

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImport(t *testing.T) {
	path := writeSalesWorkbook(t)

	charts, err := Import(path)
	require.NoError(t, err)
	require.Len(t, charts, 2)

	col := charts[0]
	assert.Equal(t, "Sheet1", col.Sheet)
	assert.NotEmpty(t, col.Name)
	assert.Equal(t, "Sheet1", col.DataSheet)
	assert.Equal(t, models.CellRange{R1: 2, C1: 1, R2: 4, C2: 3}, col.DataRange)
	assert.Equal(t, models.ChartBar, col.Mapping.ChartType)
	assert.Equal(t, "Monthly sales", col.Mapping.Title)
	assert.Equal(t, "month", col.Mapping.LabelColumn)
	assert.Equal(t, models.TypeString, col.Mapping.LabelType)
	assert.Equal(t, []models.ValueMapping{
		{Column: "sales", Label: "sales", Type: models.TypeNumeric},
		{Column: "cost", Label: "Cost", Type: models.TypeNumeric},
	}, col.Mapping.ValueMappings)

	pie := charts[1]
	assert.Equal(t, "Charts", pie.Sheet)
	assert.Equal(t, "Sheet1", pie.DataSheet)
	assert.Equal(t, models.ChartPie, pie.Mapping.ChartType)
	assert.Nil(t, pie.Mapping.AxisTitles)
	assert.Equal(t, []models.ValueMapping{
		{Column: "cost", Label: "cost", Type: models.TypeNumeric},
	}, pie.Mapping.ValueMappings)
	assert.Equal(t, models.CellRange{R1: 2, C1: 1, R2: 4, C2: 3}, pie.DataRange)
}

func TestImportWithoutCharts(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "plain"))
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, f.SaveAs(path))

	charts, err := Import(path)
	require.NoError(t, err)
	assert.Empty(t, charts)
}

func TestImportInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := Import(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenKeepsFileForReading(t *testing.T) {
	wb, err := Open(writeSalesWorkbook(t))
	require.NoError(t, err)
	defer wb.Close()

	v, err := wb.File.GetCellValue("Sheet1", "B3")
	require.NoError(t, err)
	assert.Equal(t, "150", v)
}
