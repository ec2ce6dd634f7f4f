// Package cli implements the alignplot command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/alignplot-go/internal/picker"
	"github.com/ukaji3/alignplot-go/pkg/alignplot"
	"github.com/ukaji3/alignplot-go/pkg/alignplot/config"
	"github.com/ukaji3/alignplot-go/pkg/alignplot/loader"
	"github.com/ukaji3/alignplot-go/pkg/log"
)

// DefaultXLabel is used when neither a flag nor the config sets one.
const DefaultXLabel = "Time"

// pickFile asks the user for an input file. It returns "" if they cancel.
var pickFile = func(cmd *cobra.Command) (string, error) {
	return picker.Run("",
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
}

// isTerminal reports whether r is an interactive terminal.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type flags struct {
	output     string
	format     string
	labels     []string
	colors     []string
	xLabel     string
	noGrid     bool
	width      string
	height     string
	delimiter  string
	header     string
	sheet      string
	cellRange  string
	configPath string
}

// NewRootCmd returns the alignplot root command.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "alignplot [input.csv|input.txt|input.xlsx]",
		Short: "Plot data columns as stacked charts sharing one x axis",
		Long: `alignplot reads a table of numbers, one column per series, and renders
each column as a line plot. The plots are stacked vertically and share the
x axis, which is the row index.

Delimited text uses ';' between fields by default. A first row that is not
entirely numeric is used as the plot labels. Without an input argument an
interactive file picker is shown.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		pf := cc.Flags()

		var merr error

		logLevel, err := pf.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := pf.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "Output file path, or - for stdout (default: input path with the format's extension)")
	fl.StringVar(&f.format, "format", "", "Output format: png, jpg, svg, pdf, eps, tif (default: from --output, else png)")
	fl.StringSliceVar(&f.labels, "labels", nil, "Comma-separated y-axis labels, one per series")
	fl.StringSliceVar(&f.colors, "colors", nil, "Comma-separated colors, at least one per series (default: red,green,blue,blue,...)")
	fl.StringVar(&f.xLabel, "xlabel", DefaultXLabel, "Label of the bottom x axis")
	fl.BoolVar(&f.noGrid, "no-grid", false, "Do not draw grid lines")
	fl.StringVar(&f.width, "width", "", "Figure width, e.g. 6.4in or 16cm")
	fl.StringVar(&f.height, "height", "", "Figure height, e.g. 4.8in or 12cm")
	fl.StringVar(&f.delimiter, "delimiter", string(loader.DefaultDelimiter), `Field separator of delimited text (use \t for tab)`)
	fl.StringVar(&f.header, "header", string(loader.HeaderAuto), "First row handling: auto, always, never")
	fl.StringVar(&f.sheet, "sheet", "", "xlsx sheet to read (default: first sheet)")
	fl.StringVar(&f.cellRange, "range", "", "xlsx cell range to read, e.g. A1:C100")
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML style file")

	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := f.resolveConfig(cmd)
	if err != nil {
		return err
	}

	inputPath, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	if inputPath == "" {
		slog.Debug("file selection cancelled")
		return nil
	}

	loadOpts, err := cfg.LoadOptions()
	if err != nil {
		return err
	}

	ds, err := loader.Load(inputPath, loadOpts)
	if err != nil {
		return err
	}

	chartOpts := cfg.ChartOptions()
	if len(chartOpts.Labels) == 0 && ds.Header != nil {
		chartOpts.Labels = ds.Header
	}

	fig, err := alignplot.BuildSeries(ds.Columns, chartOpts)
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd, cfg, f.output)
	if err != nil {
		return err
	}

	outPath := f.output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + string(format)
	}

	width, height, err := cfg.Size()
	if err != nil {
		return err
	}

	if err := writeFigure(cmd, fig, outPath, format, width, height); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	slog.Info("wrote figure",
		slog.String("input", inputPath),
		slog.String("output", outPath),
		slog.Int("subplots", fig.Len()),
		slog.Int("samples", fig.Domain),
	)

	return nil
}

// resolveConfig merges the config file with explicitly set flags.
func (f *flags) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		c, err := config.Load(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	fl := cmd.Flags()
	if fl.Changed("labels") {
		cfg.Labels = f.labels
	}
	if fl.Changed("colors") {
		cfg.Colors = f.colors
	}
	if fl.Changed("xlabel") || cfg.XLabel == nil {
		cfg.XLabel = &f.xLabel
	}
	if fl.Changed("no-grid") {
		grid := !f.noGrid
		cfg.Grid = &grid
	}
	if fl.Changed("width") {
		cfg.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Height = f.height
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("delimiter") || cfg.Delimiter == "" {
		cfg.Delimiter = f.delimiter
	}
	if fl.Changed("header") || cfg.Header == "" {
		cfg.Header = f.header
	}
	if fl.Changed("sheet") {
		cfg.Sheet = f.sheet
	}
	if fl.Changed("range") {
		cfg.Range = f.cellRange
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid argument: %w", err)
	}
	return cfg, nil
}

// resolveInput returns the positional input, or asks for one interactively.
func resolveInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !isTerminal(cmd.InOrStdin()) {
		return "", errors.New("no input file given and stdin is not a terminal")
	}
	return pickFile(cmd)
}

// outputFormat prefers an explicit format, then the output extension.
func outputFormat(cmd *cobra.Command, cfg *config.Config, output string) (alignplot.Format, error) {
	if cmd.Flags().Changed("format") || cfg.Format != "" {
		return cfg.OutputFormat()
	}
	if output != "" && output != "-" && filepath.Ext(output) != "" {
		return alignplot.ParseFormat(filepath.Ext(output))
	}
	return alignplot.FormatPNG, nil
}

func writeFigure(cmd *cobra.Command, fig *alignplot.Figure, path string, format alignplot.Format, width, height vg.Length) error {
	if path == "-" {
		return fig.Render(cmd.OutOrStdout(), format, width, height)
	}
	return fig.SaveAs(path, format, width, height)
}
