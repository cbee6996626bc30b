package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// DecodeRows decodes a JSON array of objects into rows.
// JSON numbers decode as float64 and null as nil.
func DecodeRows(r io.Reader) ([]models.Row, error) {
	var rows []models.Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, NewSourceError("json", "rows", fmt.Errorf("failed to decode rows: %w", err))
	}
	if rows == nil {
		rows = []models.Row{}
	}
	return rows, nil
}

// LoadRows reads rows from a JSON file.
func LoadRows(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewSourceError("json", path, err)
	}
	defer f.Close()
	return DecodeRows(f)
}

// LoadMapping reads a column mapping from a YAML or JSON file.
func LoadMapping(path string) (models.ColumnMapping, error) {
	var m models.ColumnMapping
	err := decodeFile(path, &m)
	return m, err
}

// LoadDashboard reads a dashboard definition from a YAML or JSON file.
func LoadDashboard(path string) (models.Dashboard, error) {
	var d models.Dashboard
	err := decodeFile(path, &d)
	return d, err
}

// decodeFile picks the decoder from the file extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewSourceError("file", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return NewSourceError("yaml", path, fmt.Errorf("failed to parse: %w", err))
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return NewSourceError("json", path, fmt.Errorf("failed to parse: %w", err))
		}
	default:
		return NewSourceError("file", path, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
	return nil
}
