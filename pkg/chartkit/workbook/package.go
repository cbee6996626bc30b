// Package workbook derives column mappings from charts embedded in xlsx files.
package workbook

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// sheetEntry is a sheet declared in workbook.xml.
type sheetEntry struct {
	name string
	rID  string
}

// readZipFile reads a part from the package. It returns nil, nil when the
// part does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// readElementText collects the character data of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

// skipElement consumes the rest of the current element.
func skipElement(decoder *xml.Decoder) {
	_, _ = readElementText(decoder)
}

// resolveRelativePath resolves a relationship target against the directory
// of the part that owns the relationship.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part of a package part,
// e.g. xl/drawings/drawing1.xml -> xl/drawings/_rels/drawing1.xml.rels.
func relsPathFor(partPath string) string {
	idx := strings.LastIndex(partPath, "/")
	if idx < 0 {
		return "_rels/" + partPath + ".rels"
	}
	return partPath[:idx] + "/_rels/" + partPath[idx+1:] + ".rels"
}

// dirOf returns the directory of a part path.
func dirOf(partPath string) string {
	if idx := strings.LastIndex(partPath, "/"); idx >= 0 {
		return partPath[:idx]
	}
	return ""
}

// parseWorkbookSheets lists sheets in workbook order.
func parseWorkbookSheets(data []byte) []sheetEntry {
	var result []sheetEntry
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var entry sheetEntry
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					entry.name = attr.Value
				case "id":
					entry.rID = attr.Value
				}
			}
			if entry.name != "" && entry.rID != "" {
				result = append(result, entry)
			}
		}
	}

	return result
}

// parseRelationships maps relationship ids to targets, keeping only
// relationships whose type contains typeHint.
func parseRelationships(data []byte, typeHint string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target, relType string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				case "Type":
					relType = attr.Value
				}
			}
			if strings.HasSuffix(strings.ToLower(relType), "/"+typeHint) {
				result[rID] = target
			}
		}
	}

	return result
}

// findDrawingRelationship returns the drawing target of a sheet, if any.
func findDrawingRelationship(data []byte) string {
	for _, target := range parseRelationships(data, "drawing") {
		return target
	}
	return ""
}
