package loader

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrEmptyDataset indicates the input holds no samples.
var ErrEmptyDataset = errors.New("dataset is empty")

// CellError represents a cell that could not be read as a sample.
type CellError struct {
	Row   int // 1-based source row
	Col   int // 1-based source column
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %d (%q): %v", e.Row, e.Col, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// Causes of a CellError.
var (
	ErrNotNumeric  = errors.New("not a number")
	ErrColumnGap   = errors.New("value after the end of its column")
	ErrExtraColumn = errors.New("more fields than columns")
)

func newCellError(row, col int, value string, err error) *CellError {
	return &CellError{
		Row:   row,
		Col:   col,
		Value: value,
		Err:   err,
	}
}
