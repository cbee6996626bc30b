package workbook

import (
	"archive/zip"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
)

// ErrInvalidFormat indicates the input file is not a valid xlsx package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Workbook is an opened xlsx file together with its importable charts.
type Workbook struct {
	// File gives access to sheet data.
	File *excelize.File
	// Charts lists the charts that could be expressed as column mappings,
	// in sheet and drawing order.
	Charts []models.ImportedChart
}

// Close releases the workbook file.
func (w *Workbook) Close() error {
	return w.File.Close()
}

// Open opens an xlsx file and imports its charts.
//
// Charts are skipped when their plot type is unsupported or when they lack a
// category or value range reference on a sheet of the workbook.
func Open(path string) (*Workbook, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	parts, err := findChartParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	var specs []*chartSpec
	for _, part := range parts {
		spec, err := parseChartPart(&r.Reader, part)
		if err != nil {
			return nil, fmt.Errorf("failed to read chart %s: %w", part.path, err)
		}
		if spec != nil {
			specs = append(specs, spec)
		}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	grids := make(map[string][][]string)
	cellsOf := func(sheet string) ([][]string, bool) {
		if cells, ok := grids[sheet]; ok {
			return cells, true
		}
		cells, err := f.GetRows(sheet)
		if err != nil {
			return nil, false
		}
		grids[sheet] = cells
		return cells, true
	}

	wb := &Workbook{File: f}
	for _, spec := range specs {
		if chart, ok := buildImportedChart(spec, cellsOf); ok {
			wb.Charts = append(wb.Charts, chart)
		}
	}
	return wb, nil
}

// Import returns the importable charts of an xlsx file.
func Import(path string) ([]models.ImportedChart, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return wb.Charts, nil
}

// buildImportedChart turns parsed series references into a column mapping.
// Column names come from the header cell above each range.
func buildImportedChart(spec *chartSpec, cellsOf func(string) ([][]string, bool)) (models.ImportedChart, bool) {
	var dataSheet string
	var labelRange models.CellRange
	for _, s := range spec.series {
		if sheet, rng, ok := parseReference(s.catRef); ok {
			dataSheet, labelRange = sheet, rng
			break
		}
	}
	if dataSheet == "" {
		return models.ImportedChart{}, false
	}

	cells, ok := cellsOf(dataSheet)
	if !ok {
		return models.ImportedChart{}, false
	}

	mapping := models.ColumnMapping{
		ChartType:   spec.chartType,
		LabelColumn: source.ColumnName(cells, labelRange.R1-1, labelRange.C1),
		LabelType:   models.TypeString,
		Title:       spec.title,
	}
	if !spec.chartType.IsProportional() && (spec.xAxisTitle != "" || spec.yAxisTitle != "") {
		mapping.AxisTitles = &models.AxisTitles{X: spec.xAxisTitle, Y: spec.yAxisTitle}
	}

	dataRange := labelRange
	for _, s := range spec.series {
		sheet, rng, ok := parseReference(s.valRef)
		if !ok || sheet != dataSheet {
			continue
		}
		mapping.ValueMappings = append(mapping.ValueMappings, models.ValueMapping{
			Column: source.ColumnName(cells, rng.R1-1, rng.C1),
			Label:  seriesName(s, cellsOf),
			Type:   models.TypeNumeric,
		})
		dataRange = dataRange.Union(rng)
	}
	if len(mapping.ValueMappings) == 0 {
		return models.ImportedChart{}, false
	}

	return models.ImportedChart{
		Sheet:     spec.part.sheet,
		Name:      spec.part.name,
		DataSheet: dataSheet,
		DataRange: dataRange,
		Mapping:   mapping,
	}, true
}

// seriesName resolves a series name reference to its cell text, falling
// back to the cached or literal name.
func seriesName(s seriesSpec, cellsOf func(string) ([][]string, bool)) string {
	if sheet, rng, ok := parseReference(s.nameRef); ok {
		if cells, ok := cellsOf(sheet); ok {
			if rng.R1 <= len(cells) && rng.C1 <= len(cells[rng.R1-1]) {
				if name := cells[rng.R1-1][rng.C1-1]; name != "" {
					return name
				}
			}
		}
	}
	if s.nameText != "" {
		return s.nameText
	}
	// excelize stores literal names in the formula slot.
	if _, _, ok := parseReference(s.nameRef); !ok {
		return s.nameRef
	}
	return ""
}
