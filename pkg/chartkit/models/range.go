package models

// CellRange represents 1-based, inclusive cell coordinate bounds on a sheet.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// Union returns the smallest range covering both r and o.
// A zero range is treated as empty.
func (r CellRange) Union(o CellRange) CellRange {
	if r == (CellRange{}) {
		return o
	}
	if o == (CellRange{}) {
		return r
	}
	return CellRange{
		R1: min(r.R1, o.R1),
		C1: min(r.C1, o.C1),
		R2: max(r.R2, o.R2),
		C2: max(r.C2, o.C2),
	}
}
