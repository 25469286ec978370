package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/bayesgrid/model"
	"github.com/katalvlaran/bayesgrid/report"
	"github.com/katalvlaran/bayesgrid/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const globe = `
name: globe
parameters:
  - {name: p, low: 0, high: 1, count: 200}
likelihood: {family: binomial, params: [9, p], observations: [6]}
draws: 2000
seed: 3
widths: [0.89]
`

func run(t *testing.T) *model.Result {
	t.Helper()
	s, err := model.Parse(strings.NewReader(globe))
	require.NoError(t, err)
	m, err := s.Compile()
	require.NoError(t, err)
	r, err := model.Run(context.Background(), m, model.RunOptions{})
	require.NoError(t, err)
	return r
}

// TestPosteriorPlot renders the marginal posterior as SVG.
func TestPosteriorPlot(t *testing.T) {
	r := run(t)
	p, err := report.PosteriorPlot(r.Posterior, 0)
	require.NoError(t, err)
	assert.Equal(t, "Posterior of p", p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTo(&buf, p, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	_, err = report.PosteriorPlot(r.Posterior, 1)
	assert.Error(t, err)
	_, err = report.PosteriorPlot(nil, 0)
	assert.ErrorIs(t, err, report.ErrNoData)
}

// TestSampleHistogram checks argument validation and rendering.
func TestSampleHistogram(t *testing.T) {
	draws := []float64{0.2, 0.4, 0.4, 0.5, 0.6, 0.9}
	iv, err := summary.HDI(draws, 0.5)
	require.NoError(t, err)

	p, err := report.SampleHistogram("p", draws, 5, iv)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WriteTo(&buf, p, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	_, err = report.SampleHistogram("p", nil, 5)
	assert.ErrorIs(t, err, report.ErrNoData)
	_, err = report.SampleHistogram("p", draws, 0)
	assert.ErrorIs(t, err, report.ErrInvalidBins)
	assert.Error(t, report.WriteTo(&buf, p, "bogus"))
}

// TestPlotResult writes one posterior and one histogram per parameter.
func TestPlotResult(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	paths, err := report.PlotResult(dir, run(t))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Equal(t, "globe_p_posterior.png", filepath.Base(paths[0]))

	_, err = report.PlotResult(dir, nil)
	assert.ErrorIs(t, err, report.ErrNoData)
}

// TestWriteSummary checks the header and the formatted row.
func TestWriteSummary(t *testing.T) {
	s, err := summary.Describe([]float64{1, 2, 3, 3, 4, 5}, 0.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf, "mu", s))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"param", "n", "mean", "sd", "median", "mode", "50%", "PI", "50%", "HDI"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"mu", "6", "3.0000"}, strings.Fields(lines[1])[:3])
	assert.Contains(t, lines[1], "[2.0000, 3.0000]")
}

// TestWriteResult checks the run header and parameter rows.
func TestWriteResult(t *testing.T) {
	r := run(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteResult(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "model globe (run "+r.ID+")")
	assert.Contains(t, out, "grid cells: 200  draws: 2000  seed: 3")
	assert.Contains(t, out, "exact mean")
	assert.Regexp(t, `(?m)^0\.66\d+\s+0\.63\d+\s+\S+\s+p\s+2000\s`, out)

	assert.ErrorIs(t, report.WriteResult(&buf, nil), report.ErrNoData)
}

// TestWriteJSON round-trips a run result.
func TestWriteJSON(t *testing.T) {
	r := run(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, r))

	var back model.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r.ID, back.ID)
	assert.Equal(t, r.Parameters, back.Parameters)
}
