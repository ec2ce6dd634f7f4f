package alignplot

import (
	"errors"
	"fmt"
)

// ErrNoSeries indicates that no series were passed to the builder.
var ErrNoSeries = errors.New("at least one series is required")

// ErrLabelCountMismatch is matched by a ValidationError of kind LabelCountMismatch.
var ErrLabelCountMismatch = errors.New("label count does not match series count")

// ErrColorCountMismatch is matched by a ValidationError of kind ColorCountMismatch.
var ErrColorCountMismatch = errors.New("fewer colors than series")

// ValidationKind names the argument that failed validation.
type ValidationKind string

const (
	// LabelCountMismatch means the label list length differs from the series count.
	LabelCountMismatch ValidationKind = "label_count_mismatch"
	// ColorCountMismatch means the color list is shorter than the series count.
	ColorCountMismatch ValidationKind = "color_count_mismatch"
)

// ValidationError reports a rejected builder argument.
type ValidationError struct {
	Kind ValidationKind
	// Expected is the number of series.
	Expected int
	// Got is the number of labels or colors received.
	Got int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case LabelCountMismatch:
		return fmt.Sprintf("the number of labels must match the number of series (%d series vs. %d labels given)", e.Expected, e.Got)
	case ColorCountMismatch:
		return fmt.Sprintf("the number of colors must be at least the number of series (%d series vs. %d colors given)", e.Expected, e.Got)
	}
	return fmt.Sprintf("validation error %s: expected %d, got %d", e.Kind, e.Expected, e.Got)
}

// Is lets errors.Is match the sentinel for the error's kind.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case LabelCountMismatch:
		return target == ErrLabelCountMismatch
	case ColorCountMismatch:
		return target == ErrColorCountMismatch
	}
	return false
}

// ColorError reports a color identifier that could not be resolved.
type ColorError struct {
	Index int
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("unknown color %q at index %d", e.Value, e.Index)
}

func newValidationError(kind ValidationKind, expected, got int) *ValidationError {
	return &ValidationError{
		Kind:     kind,
		Expected: expected,
		Got:      got,
	}
}
