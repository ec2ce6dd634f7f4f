package loader

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/alignplot-go/pkg/alignplot/models"
)

// LoadXLSX reads one sheet of an xlsx workbook.
func LoadXLSX(path string, opts Options) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractSheet(f, opts)
}

// ExtractSheet reads the sheet and range selected by opts from an open workbook.
func ExtractSheet(f *excelize.File, opts Options) (*models.Dataset, error) {
	sheetName := opts.Sheet

	var (
		area    models.CellRange
		hasArea bool
	)
	if opts.Range != "" {
		rangeSheet, r, err := ParseRangeReference(opts.Range)
		if err != nil {
			return nil, err
		}
		if rangeSheet != "" {
			if sheetName != "" && sheetName != rangeSheet {
				return nil, fmt.Errorf("range %q refers to sheet %q, not %q", opts.Range, rangeSheet, sheetName)
			}
			sheetName = rangeSheet
		}
		area, hasArea = r, true
	}

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyDataset
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}

	if !hasArea {
		area, hasArea = dataBounds(rows)
		if !hasArea {
			return nil, ErrEmptyDataset
		}
	}

	slog.Debug("reading sheet",
		slog.String("sheet", sheetName),
		slog.Int("r1", area.R1), slog.Int("c1", area.C1),
		slog.Int("r2", area.R2), slog.Int("c2", area.C2),
	)

	return ParseRows(crop(rows, area), opts.headerMode(), area.R1, area.C1)
}
