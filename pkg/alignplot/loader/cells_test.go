package loader

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rows    [][]string
		mode    HeaderMode
		header  []string
		columns [][]float64
	}{
		"numeric first row is data": {
			rows:    [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
			mode:    HeaderAuto,
			columns: [][]float64{{1, 4}, {2, 5}, {3, 6}},
		},
		"text first row is header": {
			rows:    [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}},
			mode:    HeaderAuto,
			header:  []string{"a", "b"},
			columns: [][]float64{{1, 3}, {2, 4}},
		},
		"signed decimals are numeric": {
			rows:    [][]string{{"-1.5", "2e3"}, {" 0.25 ", "7"}},
			mode:    HeaderAuto,
			columns: [][]float64{{-1.5, 0.25}, {2000, 7}},
		},
		"forced header": {
			rows:    [][]string{{"1", "2"}, {"3", "4"}},
			mode:    HeaderAlways,
			header:  []string{"1", "2"},
			columns: [][]float64{{3}, {4}},
		},
		"short row ends trailing columns": {
			rows:    [][]string{{"x", "y"}, {"1", "2"}, {"3"}},
			mode:    HeaderAuto,
			header:  []string{"x", "y"},
			columns: [][]float64{{1, 3}, {2}},
		},
		"empty cell ends a column": {
			rows:    [][]string{{"1", "2"}, {"", "3"}, {"", "4"}},
			mode:    HeaderNever,
			columns: [][]float64{{1}, {2, 3, 4}},
		},
		"trailing delimiter ignored": {
			rows:    [][]string{{"a", "b", ""}, {"1", "2", ""}},
			mode:    HeaderAuto,
			header:  []string{"a", "b"},
			columns: [][]float64{{1}, {2}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ds, err := ParseRows(tc.rows, tc.mode, 1, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.header, ds.Header)
			assert.Equal(t, tc.columns, ds.Columns)
		})
	}
}

func TestParseRowsErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rows  [][]string
		mode  HeaderMode
		cause error
		row   int
		col   int
	}{
		"not numeric": {
			rows:  [][]string{{"1", "2"}, {"x", "4"}},
			mode:  HeaderAuto,
			cause: ErrNotNumeric,
			row:   2,
			col:   1,
		},
		"header row as data": {
			rows:  [][]string{{"a", "b"}, {"1", "2"}},
			mode:  HeaderNever,
			cause: ErrNotNumeric,
			row:   1,
			col:   1,
		},
		"gap in column": {
			rows:  [][]string{{"a", "b"}, {"1", "2"}, {"", "3"}, {"4", "5"}},
			mode:  HeaderAuto,
			cause: ErrColumnGap,
			row:   4,
			col:   1,
		},
		"extra field": {
			rows:  [][]string{{"1", "2"}, {"3", "4", "5"}},
			mode:  HeaderAuto,
			cause: ErrExtraColumn,
			row:   2,
			col:   3,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseRows(tc.rows, tc.mode, 1, 1)
			require.ErrorIs(t, err, tc.cause)

			var cellErr *CellError
			require.ErrorAs(t, err, &cellErr)
			assert.Equal(t, tc.row, cellErr.Row)
			assert.Equal(t, tc.col, cellErr.Col)
		})
	}
}

func TestParseRowsCollectsAllErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseRows([][]string{{"1", "2"}, {"x", "y"}, {"3", "z"}}, HeaderAuto, 1, 1)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
}

func TestParseRowsEmpty(t *testing.T) {
	t.Parallel()

	for name, rows := range map[string][][]string{
		"no rows":     nil,
		"blank row":   {{"", " "}},
		"header only": {{"a", "b"}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseRows(rows, HeaderAuto, 1, 1)
			require.ErrorIs(t, err, ErrEmptyDataset)
		})
	}
}

func TestParseRowsOffsets(t *testing.T) {
	t.Parallel()

	_, err := ParseRows([][]string{{"a"}, {"bad"}}, HeaderAuto, 5, 3)

	var cellErr *CellError
	require.ErrorAs(t, err, &cellErr)
	assert.Equal(t, 6, cellErr.Row)
	assert.Equal(t, 3, cellErr.Col)
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"123", 123, true},
		{"123.45", 123.45, true},
		{"-100", -100, true},
		{"1e-3", 0.001, true},
		{"hello", 0, false},
		{"", 0, false},
		{"1,5", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseNumber(tt.input)
		assert.Equal(t, tt.ok, ok, "parseNumber(%q)", tt.input)
		assert.InDelta(t, tt.want, got, 1e-12, "parseNumber(%q)", tt.input)
	}
}
