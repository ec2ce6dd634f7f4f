// Package models defines data structures for loaded series data.
package models

// Dataset is a table of numeric columns, one column per series.
type Dataset struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Header holds the column names, or nil if the source had no header row.
	Header []string `json:"header,omitempty"`
	// Columns holds the samples of each column in row order.
	// Columns may differ in length.
	Columns [][]float64 `json:"columns"`
}

// Len returns the number of columns.
func (d *Dataset) Len() int {
	return len(d.Columns)
}

// Rows returns the length of the longest column.
func (d *Dataset) Rows() int {
	n := 0
	for _, c := range d.Columns {
		n = max(n, len(c))
	}
	return n
}
