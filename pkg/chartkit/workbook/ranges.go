package workbook

import (
	"strings"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/xuri/excelize/v2"
)

// parseReference parses a series reference such as 'Sales Data'!$A$2:$A$7
// or Sheet1!$B$1 into its sheet name and range.
func parseReference(ref string) (string, models.CellRange, bool) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "=")

	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return "", models.CellRange{}, false
	}

	sheet := ref[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	area, ok := parseRangeToArea(ref[idx+1:])
	if !ok || sheet == "" {
		return "", models.CellRange{}, false
	}
	return sheet, area, true
}

// parseRangeToArea parses a range string like $A$1:$D$10 (or a single cell).
func parseRangeToArea(rangeStr string) (models.CellRange, bool) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	start, end, found := strings.Cut(rangeStr, ":")
	if !found {
		end = start
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.CellRange{}, false
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.CellRange{}, false
	}

	return models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, true
}
