package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ukaji3/alignplot-go/pkg/alignplot/models"
)

// LoadCSV reads delimited text with one column per series and one row per sample.
func LoadCSV(r io.Reader, opts Options) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.delimiter()
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited text: %w", err)
	}

	return ParseRows(rows, opts.headerMode(), 1, 1)
}
