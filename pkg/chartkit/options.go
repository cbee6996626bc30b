// Package chartkit hydrates chart configurations from tabular rows.
package chartkit

import "github.com/ukaji3/chartkit-go/pkg/chartkit/transform"

// Options configures hydration behavior.
type Options struct {
	// FalsyAsEmpty renders falsy label and categorical values (0, false, "")
	// as empty strings. Off by default, so 0 renders as "0".
	FalsyAsEmpty bool
	// Palette, when set, is applied by the helpers that colour their output
	// (RenderWorkbook, HydrateDashboard). Hydrate never assigns colours.
	Palette []string
	// Parallelism bounds concurrent queries in HydrateDashboard.
	// If zero or negative, defaults to 4.
	Parallelism int
}

// DefaultOptions returns default hydration options.
func DefaultOptions() Options {
	return Options{
		Parallelism: 4,
	}
}

// EffectiveParallelism returns Parallelism, or the default when unset.
func (o Options) EffectiveParallelism() int {
	if o.Parallelism > 0 {
		return o.Parallelism
	}
	return DefaultOptions().Parallelism
}

func (o Options) formatter() transform.Formatter {
	return transform.Formatter{FalsyAsEmpty: o.FalsyAsEmpty}
}
