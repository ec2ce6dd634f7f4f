package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/alignplot-go/pkg/alignplot/models"
)

// ParseRangeReference parses a cell range reference.
// Format: 'Sheet Name'!$A$1:$D$10, Sheet1!A1:D10 or A1:D10.
// The returned sheet name is empty when the reference is not qualified.
func ParseRangeReference(ref string) (string, models.CellRange, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	r, err := parseRange(ref)
	if err != nil {
		return "", models.CellRange{}, err
	}
	return sheetName, r, nil
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (models.CellRange, error) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("invalid range %q: expected <start>:<end>", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	return models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
