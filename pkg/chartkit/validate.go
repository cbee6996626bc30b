package chartkit

import (
	"fmt"
	"strings"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// ValidateMapping checks a mapping against the supported schema and returns
// the first problem found as a *MappingError.
func ValidateMapping(m models.ColumnMapping) error {
	if !m.ChartType.IsKnown() {
		return NewMappingError("chartType", "unsupported chart type %q", m.ChartType)
	}
	if strings.TrimSpace(m.LabelColumn) == "" {
		return NewMappingError("labelColumn", "label column is required")
	}
	if m.LabelType != "" && !m.LabelType.IsKnown() {
		return NewMappingError("labelType", "unknown semantic type %q", m.LabelType)
	}
	if len(m.ValueMappings) == 0 {
		return NewMappingError("valueMappings", "at least one value mapping is required")
	}
	for i, vm := range m.ValueMappings {
		field := fmt.Sprintf("valueMappings[%d]", i)
		if strings.TrimSpace(vm.Column) == "" {
			return NewMappingError(field+".column", "column is required")
		}
		if vm.Type != "" && !vm.Type.IsKnown() {
			return NewMappingError(field+".type", "unknown semantic type %q", vm.Type)
		}
		if !vm.Format.IsKnown() {
			return NewMappingError(field+".format", "unknown display format %q", vm.Format)
		}
		if vm.Color != "" && strings.TrimSpace(vm.Color) == "" {
			return NewMappingError(field+".color", "color must not be blank")
		}
	}
	return nil
}
