// Package loader reads tabular numeric data from delimited text and xlsx files.
package loader

import "fmt"

// HeaderMode controls how the first row is interpreted.
type HeaderMode string

const (
	// HeaderAuto treats the first row as data when every field is a number,
	// and as the header otherwise.
	HeaderAuto HeaderMode = "auto"
	// HeaderAlways treats the first row as the header.
	HeaderAlways HeaderMode = "always"
	// HeaderNever treats the first row as data.
	HeaderNever HeaderMode = "never"
)

// DefaultDelimiter separates fields in delimited text input.
const DefaultDelimiter = ';'

// Options configures loading.
type Options struct {
	// Delimiter separates fields in delimited text. Zero means DefaultDelimiter.
	Delimiter rune
	// Header selects header detection. Empty means HeaderAuto.
	Header HeaderMode
	// Sheet is the xlsx sheet to read. Empty means the first sheet.
	Sheet string
	// Range restricts xlsx reading to a block such as "A1:C20" or "Sheet1!$A$1:$C$20".
	// Empty means the bounding box of all non-empty cells.
	Range string
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		Header:    HeaderAuto,
	}
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

func (o Options) headerMode() HeaderMode {
	if o.Header == "" {
		return HeaderAuto
	}
	return o.Header
}

// ParseHeaderMode parses a header mode name.
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch HeaderMode(s) {
	case HeaderAuto, HeaderAlways, HeaderNever:
		return HeaderMode(s), nil
	case "":
		return HeaderAuto, nil
	}
	return "", fmt.Errorf("invalid header mode: %s (must be auto, always, or never)", s)
}
