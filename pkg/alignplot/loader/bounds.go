package loader

import (
	"strings"

	"github.com/ukaji3/alignplot-go/pkg/alignplot/models"
)

// dataBounds finds the bounding box of non-empty cells.
// It returns ok=false if every cell is empty.
func dataBounds(rows [][]string) (models.CellRange, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true
}

// crop returns the cells of rows inside r. Rows are padded with empty
// fields so every returned row spans the full column range.
func crop(rows [][]string, r models.CellRange) [][]string {
	out := make([][]string, r.R2-r.R1+1)
	for i := range out {
		out[i] = make([]string, r.C2-r.C1+1)
	}
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if r.Contains(rowIdx+1, colIdx+1) {
				out[rowIdx+1-r.R1][colIdx+1-r.C1] = cell
			}
		}
	}
	return out
}
