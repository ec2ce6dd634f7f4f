package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "B2", "Voltage"))
	require.NoError(t, f.SetCellValue(sheetName, "C2", "Current"))
	require.NoError(t, f.SetCellValue(sheetName, "B3", 1))
	require.NoError(t, f.SetCellValue(sheetName, "C3", 2.5))
	require.NoError(t, f.SetCellValue(sheetName, "B4", 2))
	require.NoError(t, f.SetCellValue(sheetName, "C4", 3.5))
	require.NoError(t, f.SetCellValue(sheetName, "B5", 3))

	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Other", "A1", 10))
	require.NoError(t, f.SetCellValue("Other", "A2", 20))

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

func TestLoadXLSX(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t)

	tests := map[string]struct {
		opts    Options
		header  []string
		columns [][]float64
	}{
		"first sheet bounding box": {
			opts:    Options{},
			header:  []string{"Voltage", "Current"},
			columns: [][]float64{{1, 2, 3}, {2.5, 3.5}},
		},
		"named sheet": {
			opts:    Options{Sheet: "Other"},
			columns: [][]float64{{10, 20}},
		},
		"range": {
			opts:    Options{Range: "$B$3:$C$4"},
			columns: [][]float64{{1, 2}, {2.5, 3.5}},
		},
		"sheet qualified range": {
			opts:    Options{Range: "'Other'!A2:A2"},
			columns: [][]float64{{20}},
		},
		"range wider than data": {
			opts:    Options{Range: "B2:D9"},
			header:  []string{"Voltage", "Current"},
			columns: [][]float64{{1, 2, 3}, {2.5, 3.5}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ds, err := LoadXLSX(path, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.header, ds.Header)
			assert.Equal(t, tc.columns, ds.Columns)
		})
	}
}

func TestLoadXLSXErrors(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t)

	_, err := LoadXLSX(path, Options{Sheet: "Missing"})
	require.Error(t, err)

	_, err = LoadXLSX(path, Options{Sheet: "Sheet1", Range: "Other!A1:A2"})
	require.ErrorContains(t, err, "refers to sheet")

	_, err = LoadXLSX(path, Options{Range: "A1"})
	require.ErrorContains(t, err, "invalid range")

	_, err = LoadXLSX(path, Options{Range: "Z100:Z200"})
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDataBounds(t *testing.T) {
	t.Parallel()

	r, ok := dataBounds([][]string{{}, {"", "", "x"}, {"", "y", ""}})
	require.True(t, ok)
	assert.Equal(t, 2, r.R1)
	assert.Equal(t, 2, r.C1)
	assert.Equal(t, 3, r.R2)
	assert.Equal(t, 3, r.C2)

	_, ok = dataBounds([][]string{{"", " "}})
	assert.False(t, ok)
}
