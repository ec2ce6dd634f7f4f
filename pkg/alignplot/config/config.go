// Package config reads figure style settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/alignplot-go/pkg/alignplot"
	"github.com/ukaji3/alignplot-go/pkg/alignplot/loader"
)

// Config holds figure and input settings. Zero values mean "use the default".
type Config struct {
	// Labels are the y-axis labels, one per series.
	Labels []string `yaml:"labels,omitempty"`
	// Colors are color identifiers, at least one per series.
	Colors []string `yaml:"colors,omitempty"`
	// XLabel is the bottom x-axis label.
	XLabel *string `yaml:"x_label,omitempty"`
	// Grid toggles grid lines.
	Grid *bool `yaml:"grid,omitempty"`
	// Width and Height are lengths such as "6.4in", "16cm" or "460pt".
	Width  string `yaml:"width,omitempty"`
	Height string `yaml:"height,omitempty"`
	// Format is the output format (png, jpg, svg, pdf, eps, tif).
	Format string `yaml:"format,omitempty"`
	// Delimiter is the field separator of delimited text input.
	Delimiter string `yaml:"delimiter,omitempty"`
	// Header is the header detection mode (auto, always, never).
	Header string `yaml:"header,omitempty"`
	// Sheet and Range select a block of an xlsx workbook.
	Sheet string `yaml:"sheet,omitempty"`
	Range string `yaml:"range,omitempty"`
}

// Load reads a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a config document. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every set value parses.
func (c *Config) Validate() error {
	if _, _, err := c.Size(); err != nil {
		return err
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	if _, err := c.LoadOptions(); err != nil {
		return err
	}
	for i, id := range c.Colors {
		if _, err := alignplot.ParseColor(id); err != nil {
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
	}
	return nil
}

// ChartOptions returns the builder options described by c.
func (c *Config) ChartOptions() alignplot.Options {
	opts := alignplot.DefaultOptions()
	opts.Labels = c.Labels
	opts.Colors = c.Colors
	if c.XLabel != nil {
		opts.XLabel = *c.XLabel
	}
	opts.ShowGrid = c.Grid
	return opts
}

// Size returns the figure size, falling back to the defaults for unset values.
func (c *Config) Size() (vg.Length, vg.Length, error) {
	width, err := parseLength("width", c.Width, alignplot.DefaultWidth)
	if err != nil {
		return 0, 0, err
	}
	height, err := parseLength("height", c.Height, alignplot.DefaultHeight)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// OutputFormat returns the configured format, or png if unset.
func (c *Config) OutputFormat() (alignplot.Format, error) {
	if c.Format == "" {
		return alignplot.FormatPNG, nil
	}
	return alignplot.ParseFormat(c.Format)
}

// LoadOptions returns the loader options described by c.
func (c *Config) LoadOptions() (loader.Options, error) {
	opts := loader.DefaultOptions()

	if c.Delimiter != "" {
		d, err := ParseDelimiter(c.Delimiter)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = d
	}

	mode, err := loader.ParseHeaderMode(c.Header)
	if err != nil {
		return opts, err
	}
	opts.Header = mode
	opts.Sheet = c.Sheet
	opts.Range = c.Range

	return opts, nil
}

// ParseDelimiter parses a single-character field separator.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

func parseLength(name, s string, def vg.Length) (vg.Length, error) {
	if s == "" {
		return def, nil
	}
	l, err := vg.ParseLength(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if l <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", name, s)
	}
	return l, nil
}
