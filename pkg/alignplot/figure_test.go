package alignplot_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/alignplot-go/pkg/alignplot"
)

func sampleFigure(t *testing.T) *alignplot.Figure {
	t.Helper()

	fig, err := alignplot.Build(
		alignplot.Options{XLabel: "Time"},
		[]float64{1, 3, 2, 5},
		[]float64{10, 8, 9},
		[]float64{-1, 0, 1, 0},
	)
	require.NoError(t, err)
	return fig
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := map[alignplot.Format][]byte{
		alignplot.FormatPNG: []byte("\x89PNG"),
		alignplot.FormatSVG: []byte("<svg"),
		alignplot.FormatPDF: []byte("%PDF"),
	}

	for format, marker := range tests {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			err := sampleFigure(t).Render(buf, format, alignplot.DefaultWidth, alignplot.DefaultHeight)
			require.NoError(t, err)
			assert.True(t, bytes.Contains(buf.Bytes()[:min(buf.Len(), 512)], marker))
		})
	}
}

func TestRenderDegenerateSeries(t *testing.T) {
	t.Parallel()

	fig, err := alignplot.Build(alignplot.Options{}, []float64{}, []float64{4})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, fig.Render(buf, alignplot.FormatPNG, alignplot.DefaultWidth, alignplot.DefaultHeight))
	assert.NotZero(t, buf.Len())
}

func TestRenderUnsupportedFormat(t *testing.T) {
	t.Parallel()

	err := sampleFigure(t).Render(&bytes.Buffer{}, alignplot.Format("gif"), alignplot.DefaultWidth, alignplot.DefaultHeight)
	require.Error(t, err)
}

func TestSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "figure.svg")
	require.NoError(t, sampleFigure(t).Save(path, alignplot.DefaultWidth, alignplot.DefaultHeight))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	err = sampleFigure(t).Save(filepath.Join(t.TempDir(), "figure.gif"), alignplot.DefaultWidth, alignplot.DefaultHeight)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]alignplot.Format{
		"png":   alignplot.FormatPNG,
		".PNG":  alignplot.FormatPNG,
		"jpeg":  alignplot.FormatJPG,
		".svg":  alignplot.FormatSVG,
		"pdf":   alignplot.FormatPDF,
		"eps":   alignplot.FormatEPS,
		".tiff": alignplot.FormatTIFF,
	} {
		got, err := alignplot.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := alignplot.ParseFormat("bmp")
	require.Error(t, err)
}

func TestSaveAs(t *testing.T) {
	t.Parallel()

	// The extension does not pick the format.
	path := filepath.Join(t.TempDir(), "figure.out")
	require.NoError(t, sampleFigure(t).SaveAs(path, alignplot.FormatSVG, alignplot.DefaultWidth, alignplot.DefaultHeight))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	err = sampleFigure(t).SaveAs(filepath.Join(t.TempDir(), "missing", "figure.svg"), alignplot.FormatSVG, alignplot.DefaultWidth, alignplot.DefaultHeight)
	require.Error(t, err)
}

func TestRenderNonFiniteSamples(t *testing.T) {
	t.Parallel()

	fig, err := alignplot.Build(alignplot.Options{},
		[]float64{1, math.NaN(), 3, 4},
		[]float64{math.Inf(1), 2, math.Inf(-1)},
		[]float64{math.NaN(), math.NaN()},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf, alignplot.FormatSVG, alignplot.DefaultWidth, alignplot.DefaultHeight))
	assert.Contains(t, buf.String(), "<svg")
}
