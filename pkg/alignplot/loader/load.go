package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/alignplot-go/pkg/alignplot/models"
)

// Load reads a dataset from path. Files ending in .xlsx or .xlsm are read as
// workbooks; anything else is read as delimited text.
func Load(path string, opts Options) (*models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var (
		ds  *models.Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		ds, err = LoadXLSX(path, opts)
	default:
		ds, err = loadCSVFile(path, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	ds.Name = filepath.Base(path)
	slog.Debug("loaded dataset",
		slog.String("name", ds.Name),
		slog.Int("columns", ds.Len()),
		slog.Int("rows", ds.Rows()),
		slog.Bool("header", ds.Header != nil),
	)

	return ds, nil
}

func loadCSVFile(path string, opts Options) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCSV(f, opts)
}
