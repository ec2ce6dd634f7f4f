package loader

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ukaji3/alignplot-go/pkg/alignplot/models"
)

// ParseRows converts rows of text fields into a dataset with one column per
// field position. firstRow is the 1-based source row number of rows[0] and
// firstCol the 1-based source column of each row's first field; both are
// used only for error reporting.
//
// An empty field ends its column. A non-empty field after the end of its
// column, a non-numeric field, or a field beyond the last column is an
// error. All such errors are returned together.
func ParseRows(rows [][]string, mode HeaderMode, firstRow, firstCol int) (*models.Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	first := trimTrailingEmpty(rows[0])
	if len(first) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &models.Dataset{
		Columns: make([][]float64, len(first)),
	}

	data := rows
	switch mode {
	case HeaderAlways:
		ds.Header = headerLabels(first)
		data = rows[1:]
		firstRow++
	case HeaderAuto:
		if !allNumeric(first) {
			ds.Header = headerLabels(first)
			data = rows[1:]
			firstRow++
		}
	}

	var merr *multierror.Error
	ended := make([]bool, len(ds.Columns))
	samples := 0

	for i, row := range data {
		rowNum := firstRow + i
		fields := trimTrailingEmpty(row)
		for colIdx, field := range fields {
			colNum := firstCol + colIdx
			value := strings.TrimSpace(field)

			if colIdx >= len(ds.Columns) {
				merr = multierror.Append(merr, newCellError(rowNum, colNum, field, ErrExtraColumn))
				continue
			}
			if value == "" {
				ended[colIdx] = true
				continue
			}
			if ended[colIdx] {
				merr = multierror.Append(merr, newCellError(rowNum, colNum, field, ErrColumnGap))
				continue
			}

			v, ok := parseNumber(value)
			if !ok {
				merr = multierror.Append(merr, newCellError(rowNum, colNum, field, ErrNotNumeric))
				continue
			}
			ds.Columns[colIdx] = append(ds.Columns[colIdx], v)
			samples++
		}
		// Columns missing from a short row end there.
		for colIdx := len(fields); colIdx < len(ended); colIdx++ {
			ended[colIdx] = true
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	if samples == 0 {
		return nil, ErrEmptyDataset
	}

	return ds, nil
}

// parseNumber parses a trimmed field as a float.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func allNumeric(fields []string) bool {
	for _, f := range fields {
		if _, ok := parseNumber(strings.TrimSpace(f)); !ok {
			return false
		}
	}
	return true
}

func headerLabels(fields []string) []string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = strings.TrimSpace(f)
	}
	return labels
}

func trimTrailingEmpty(row []string) []string {
	n := len(row)
	for n > 0 && strings.TrimSpace(row[n-1]) == "" {
		n--
	}
	return row[:n]
}
