package workbook

import (
	"archive/zip"
	"encoding/xml"
	"strings"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// ChartTypeMap maps OOXML plot element tags to chart types.
// Plots missing from the map (area, surface, stock) cannot be imported.
var ChartTypeMap = map[string]models.ChartType{
	"lineChart":     models.ChartLine,
	"line3DChart":   models.ChartLine,
	"barChart":      models.ChartBar,
	"bar3DChart":    models.ChartBar,
	"pieChart":      models.ChartPie,
	"pie3DChart":    models.ChartPie,
	"ofPieChart":    models.ChartPie,
	"doughnutChart": models.ChartDoughnut,
	"scatterChart":  models.ChartScatter,
	"bubbleChart":   models.ChartBubble,
	"radarChart":    models.ChartRadar,
}

// chartPart locates a chart part and the drawing object hosting it.
type chartPart struct {
	sheet string
	name  string
	path  string
}

// seriesSpec holds the references of one chart series.
type seriesSpec struct {
	nameRef  string // formula in c:tx/c:strRef/c:f
	nameText string // literal in c:tx/c:v
	catRef   string // c:cat or c:xVal
	valRef   string // c:val or c:yVal
}

// chartSpec is the parsed content of a chart part.
type chartSpec struct {
	part       chartPart
	chartType  models.ChartType
	title      string
	xAxisTitle string
	yAxisTitle string
	series     []seriesSpec
}

// drawingAnchor is a graphic frame referencing a chart.
type drawingAnchor struct {
	rID  string
	name string
}

// findChartParts returns the chart parts of every sheet, in workbook and
// drawing order.
func findChartParts(r *zip.Reader) ([]chartPart, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return nil, ErrInvalidFormat
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return nil, err
	}
	sheetTargets := parseRelationships(wbRelsXML, "worksheet")

	var result []chartPart
	for _, sheet := range parseWorkbookSheets(workbookXML) {
		target, ok := sheetTargets[sheet.rID]
		if !ok {
			continue
		}
		sheetPath := resolveRelativePath(target, "xl")

		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}

		drawingTarget := findDrawingRelationship(sheetRelsXML)
		if drawingTarget == "" {
			continue
		}
		drawingPath := resolveRelativePath(drawingTarget, dirOf(sheetPath))
		result = append(result, chartPartsFromDrawing(r, sheet.name, drawingPath)...)
	}

	return result, nil
}

// chartPartsFromDrawing resolves the charts anchored in a drawing part.
func chartPartsFromDrawing(r *zip.Reader, sheetName, drawingPath string) []chartPart {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil
	}

	anchors := parseDrawingForCharts(drawingXML)
	if len(anchors) == 0 {
		return nil
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return nil
	}
	chartTargets := parseRelationships(relsXML, "chart")

	var result []chartPart
	for _, a := range anchors {
		if target, ok := chartTargets[a.rID]; ok {
			result = append(result, chartPart{
				sheet: sheetName,
				name:  a.name,
				path:  resolveRelativePath(target, dirOf(drawingPath)),
			})
		}
	}
	return result
}

// parseDrawingForCharts finds graphic frames holding charts, in document order.
func parseDrawingForCharts(data []byte) []drawingAnchor {
	var result []drawingAnchor
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "graphicFrame" {
			if a := parseGraphicFrame(decoder); a.rID != "" {
				result = append(result, a)
			}
		}
	}

	return result
}

// parseGraphicFrame reads the object name and chart relationship id.
func parseGraphicFrame(decoder *xml.Decoder) drawingAnchor {
	var a drawingAnchor
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						a.name = attr.Value
					}
				}
			case "chart":
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" {
						a.rID = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return a
}

// parseChartPart parses a chart part. It returns nil when the part is
// missing or holds no supported plot.
func parseChartPart(r *zip.Reader, part chartPart) (*chartSpec, error) {
	chartXML, err := readZipFile(r, part.path)
	if err != nil || chartXML == nil {
		return nil, err
	}

	spec := parseChartXML(chartXML)
	if spec.chartType == "" {
		return nil, nil
	}
	spec.part = part
	return spec, nil
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte) *chartSpec {
	spec := &chartSpec{}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, spec)
		}
	}

	return spec
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, spec *chartSpec) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				spec.title = parseTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, spec)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseTitle concatenates the rich text runs of a title element.
func parseTitle(decoder *xml.Decoder) string {
	var title strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					title.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(title.String())
}

// parsePlotArea reads the first supported plot and the axis titles.
func parsePlotArea(decoder *xml.Decoder, spec *chartSpec) {
	var catAxisTitle string
	var hasCatAxis bool
	var valAxisTitles []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			name := t.Name.Local
			if ct, ok := ChartTypeMap[name]; ok {
				if spec.chartType == "" {
					spec.chartType = ct
					spec.series = parseChartSeries(decoder)
				} else {
					skipElement(decoder)
				}
				depth--
				continue
			}
			switch name {
			case "catAx", "dateAx":
				hasCatAxis = true
				catAxisTitle = parseAxisTitle(decoder)
				depth--
			case "valAx":
				valAxisTitles = append(valAxisTitles, parseAxisTitle(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	// Scatter and bubble plots use two value axes, horizontal first.
	switch {
	case hasCatAxis:
		spec.xAxisTitle = catAxisTitle
		if len(valAxisTitles) > 0 {
			spec.yAxisTitle = valAxisTitles[0]
		}
	case len(valAxisTitles) >= 2:
		spec.xAxisTitle = valAxisTitles[0]
		spec.yAxisTitle = valAxisTitles[1]
	case len(valAxisTitles) == 1:
		spec.yAxisTitle = valAxisTitles[0]
	}
}

// parseAxisTitle returns the title of an axis element.
func parseAxisTitle(decoder *xml.Decoder) string {
	var title string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "title" {
				title = parseTitle(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return title
}

// parseChartSeries parses series elements within a plot.
func parseChartSeries(decoder *xml.Decoder) []seriesSpec {
	var series []seriesSpec
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) seriesSpec {
	var s seriesSpec
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.nameRef, s.nameText = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.catRef = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.valRef = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses the series name from a tx element.
func parseSeriesName(decoder *xml.Decoder) (nameRef, nameText string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRef = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					nameText = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange returns the range formula of a cat/val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}
