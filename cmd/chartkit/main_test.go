package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		outputPath, pretty, asJSON = "", false, false
	})
	return rootCmd.Execute()
}

func TestHydrateCommand(t *testing.T) {
	dir := t.TempDir()
	mapping := filepath.Join(dir, "mapping.yaml")
	rows := filepath.Join(dir, "rows.json")
	out := filepath.Join(dir, "chart.json")

	require.NoError(t, os.WriteFile(mapping, []byte(`
chartType: pie
labelColumn: fruit
valueMappings:
  - column: count
    type: numeric
title: Basket
`), 0644))
	require.NoError(t, os.WriteFile(rows, []byte(`[{"fruit":"apple","count":3},{"fruit":"pear","count":"2"}]`), 0644))

	err := execute(t, "hydrate",
		"--config", filepath.Join(dir, "none.yaml"),
		"--mapping", mapping, "--rows", rows, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "pie",
		"data": {
			"labels": ["apple", "pear"],
			"datasets": [{"label": "Value", "data": [3, 2], "borderWidth": 1}]
		},
		"options": {
			"responsive": true,
			"maintainAspectRatio": false,
			"plugins": {
				"title": {"display": true, "text": "Basket"},
				"legend": {"display": true, "position": "right"}
			}
		}
	}`, string(data))
}

func TestImportCommandWithoutCharts(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "plain.xlsx")
	out := filepath.Join(dir, "charts.yaml")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "x"))
	require.NoError(t, f.SaveAs(book))
	require.NoError(t, f.Close())

	require.NoError(t, execute(t, "import", "--config", filepath.Join(dir, "none.yaml"), book, "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestImportCommandMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "import", "--config", filepath.Join(dir, "none.yaml"), filepath.Join(dir, "missing.xlsx"))
	assert.ErrorContains(t, err, "file not found")
}
