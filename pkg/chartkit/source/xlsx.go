// Package source reads chart rows from databases, workbooks and files.
package source

import (
	"strconv"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads the data region of a sheet as rows.
// The first non-empty row of the region is the header; every following
// non-empty row becomes a Row keyed by header name.
func ReadSheet(f *excelize.File, sheetName string) ([]models.Row, error) {
	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, NewSourceError("xlsx", sheetName, err)
	}

	bounds, ok := DataBounds(cells)
	if !ok || bounds.R2 == bounds.R1 {
		return []models.Row{}, nil
	}

	// The header sits on the first row of the bounds, data starts below it.
	data := models.CellRange{R1: bounds.R1 + 1, C1: bounds.C1, R2: bounds.R2, C2: bounds.C2}
	return rowsFromGrid(cells, data), nil
}

// ReadRange reads rows r.R1..r.R2 over columns r.C1..r.C2 of a sheet.
// The row directly above r.R1 is the header; when r starts on the first row
// columns are named by their letter.
func ReadRange(f *excelize.File, sheetName string, r models.CellRange) ([]models.Row, error) {
	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, NewSourceError("xlsx", sheetName, err)
	}
	return rowsFromGrid(cells, r), nil
}

// DataBounds finds the bounding box of non-empty cells (1-based).
// It reports false when the grid has no data.
func DataBounds(cells [][]string) (models.CellRange, bool) {
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1

	for rowIdx, row := range cells {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// ColumnName returns the header name for column col (1-based): the header
// cell text, or the column letter when the header is blank or absent.
func ColumnName(cells [][]string, headerRow, col int) string {
	if headerRow >= 1 {
		if name := cellAt(cells, headerRow, col); name != "" {
			return name
		}
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return strconv.Itoa(col)
	}
	return name
}

// rowsFromGrid converts the cells inside r into rows. Blank cells are left
// out of their row and rows without data are skipped.
func rowsFromGrid(cells [][]string, r models.CellRange) []models.Row {
	headers := make([]string, 0, r.C2-r.C1+1)
	for col := r.C1; col <= r.C2; col++ {
		headers = append(headers, ColumnName(cells, r.R1-1, col))
	}

	result := []models.Row{}
	for rowNum := r.R1; rowNum <= r.R2 && rowNum <= len(cells); rowNum++ {
		row := make(models.Row)
		for i, col := 0, r.C1; col <= r.C2; i, col = i+1, col+1 {
			cellValue := cellAt(cells, rowNum, col)
			if cellValue == "" {
				continue
			}
			row[headers[i]] = parseValue(cellValue)
		}
		if len(row) > 0 {
			result = append(result, row)
		}
	}
	return result
}

func cellAt(cells [][]string, rowNum, col int) string {
	if rowNum < 1 || rowNum > len(cells) {
		return ""
	}
	row := cells[rowNum-1]
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
