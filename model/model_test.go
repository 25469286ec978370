package model_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/bayesgrid/grid"
	"github.com/katalvlaran/bayesgrid/model"
	"github.com/katalvlaran/bayesgrid/posterior"
	"github.com/katalvlaran/bayesgrid/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"
)

func compile(t *testing.T, path string) *model.Model {
	t.Helper()
	s, err := model.Load(path)
	require.NoError(t, err)
	m, err := s.Compile()
	require.NoError(t, err)
	return m
}

//----------------------------------------------------------------------------//
// End-to-end runs
//----------------------------------------------------------------------------//

// TestRun_Globe runs the globe-tossing model file end to end.
func TestRun_Globe(t *testing.T) {
	m := compile(t, filepath.Join("testdata", "globe.yaml"))
	res, err := model.Run(context.Background(), m, model.RunOptions{})
	require.NoError(t, err)

	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err, "result id is a UUID")
	assert.Equal(t, "globe-tossing", res.Name)
	assert.Equal(t, 1000, res.Cells)
	assert.Equal(t, 10_000, res.Draws)
	assert.Equal(t, uint64(100), res.Seed)
	assert.InDelta(t, 1.0, res.Posterior.Sum(), 1e-9)

	p, ok := res.Parameter("p")
	require.True(t, ok)
	assert.InDelta(t, 6.0/9, p.Exact.MAP, 1e-3)
	assert.InDelta(t, 7.0/11, p.Exact.Mean, 1e-3)
	assert.InDelta(t, 0.64, p.Summary.Mean, 0.01)
	assert.Len(t, p.Summary.Intervals, 4)

	// Beta(7, 4) quantiles at 5.5% and 94.5%.
	exact := distuv.Beta{Alpha: 7, Beta: 4}
	qi, ok := p.Summary.Interval(summary.MethodQuantile, 0.89)
	require.True(t, ok)
	assert.InDelta(t, exact.Quantile(0.055), qi.Lower, 0.02)
	assert.InDelta(t, exact.Quantile(0.945), qi.Upper, 0.02)

	below := res.Posterior.Probability(func(v []float64) bool { return v[0] < 0.5 })
	assert.InDelta(t, 0.172, below, 0.002)
}

// TestRun_Reproducible verifies a fixed seed reproduces the summaries for
// any worker count, while every run gets a fresh id.
func TestRun_Reproducible(t *testing.T) {
	m := compile(t, filepath.Join("testdata", "globe.yaml"))
	ctx := context.Background()

	a, err := model.Run(ctx, m, model.RunOptions{Draws: 6000})
	require.NoError(t, err)
	b, err := model.Run(ctx, m, model.RunOptions{Draws: 6000, Workers: 3})
	require.NoError(t, err)

	assert.Equal(t, a.Parameters, b.Parameters)
	assert.Equal(t, a.Samples.Cells(), b.Samples.Cells())
	assert.NotEqual(t, a.ID, b.ID)

	c, err := model.Run(ctx, m, model.RunOptions{Draws: 6000, Seed: 5, Widths: []float64{0.8}})
	require.NoError(t, err)
	assert.NotEqual(t, a.Samples.Cells(), c.Samples.Cells())
	assert.Equal(t, 0.8, c.Parameters[0].Summary.Intervals[0].Width)
}

// TestRun_Height fits a two-parameter normal model.
func TestRun_Height(t *testing.T) {
	m := compile(t, filepath.Join("testdata", "height.yaml"))
	res, err := model.Run(context.Background(), m, model.RunOptions{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 100*100, res.Cells)
	mu, ok := res.Parameter("mu")
	require.True(t, ok)
	assert.InDelta(t, 154.3, mu.Exact.Mean, 0.5)
	assert.InDelta(t, mu.Exact.Mean, mu.Summary.Mean, 0.3)

	sigma, ok := res.Parameter("sigma")
	require.True(t, ok)
	assert.Greater(t, sigma.Exact.Mean, 7.5)
	assert.Less(t, sigma.Exact.Mean, 11.0)

	_, ok = res.Parameter("tau")
	assert.False(t, ok)
}

// TestRun_Degenerate surfaces the posterior error when prior and grid do
// not overlap.
func TestRun_Degenerate(t *testing.T) {
	s, err := model.Parse(strings.NewReader(`
parameters:
  - {name: p, low: 0, high: 0.5, count: 50, prior: {family: uniform, params: [0.9, 1]}}
likelihood: {family: binomial, params: [9, p], observations: [6]}
`))
	require.NoError(t, err)
	m, err := s.Compile()
	require.NoError(t, err)

	_, err = model.Run(context.Background(), m, model.RunOptions{})
	assert.ErrorIs(t, err, posterior.ErrDegeneratePosterior)

	_, err = model.Run(context.Background(), nil, model.RunOptions{})
	assert.ErrorIs(t, err, model.ErrNilModel)
}

//----------------------------------------------------------------------------//
// Parsing and validation
//----------------------------------------------------------------------------//

// TestParse_Invalid checks that each bad field is rejected with ErrInvalidSpec.
func TestParse_Invalid(t *testing.T) {
	const lik = "likelihood: {family: binomial, params: [9, p], observations: [6]}\n"
	const param = "parameters: [{name: p, low: 0, high: 1, count: 10}]\n"
	cases := []struct {
		name, doc, field string
	}{
		{"Empty", "", "empty document"},
		{"UnknownField", param + lik + "colour: blue\n", "colour"},
		{"NoParameters", lik, "parameters"},
		{"MissingName", "parameters: [{low: 0, high: 1, count: 10}]\n" + lik, "parameters[0].name"},
		{"Duplicate", "parameters: [{name: p, low: 0, high: 1, count: 10}, {name: p, low: 0, high: 1, count: 10}]\n" + lik, "duplicate"},
		{"CountOne", "parameters: [{name: p, low: 0, high: 1, count: 1}]\n" + lik, "parameters[0]"},
		{"BadPrior", "parameters: [{name: p, low: 0, high: 1, count: 10, prior: {family: normal, params: [0, -1]}}]\n" + lik, "prior"},
		{"PriorFamily", "parameters: [{name: p, low: 0, high: 1, count: 10, prior: {family: gamma, params: [1, 1]}}]\n" + lik, "prior"},
		{"LikFamily", param + "likelihood: {family: poisson, params: [p], observations: [1]}\n", "likelihood.family"},
		{"Arity", param + "likelihood: {family: binomial, params: [p], observations: [1]}\n", "likelihood.params"},
		{"ParamList", param + "likelihood: {family: binomial, params: [9, [p]], observations: [1]}\n", "number or a name"},
		{"NegativeDraws", param + lik + "draws: -1\n", "draws"},
		{"Width", param + lik + "widths: [0.5, 1.5]\n", "widths[1]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.Parse(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, model.ErrInvalidSpec)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

// TestParse_UnknownReference wraps both sentinels.
func TestParse_UnknownReference(t *testing.T) {
	_, err := model.Parse(strings.NewReader(`
parameters: [{name: p, low: 0, high: 1, count: 10}]
likelihood: {family: binomial, params: [9, q], observations: [6]}
`))
	assert.ErrorIs(t, err, model.ErrInvalidSpec)
	assert.ErrorIs(t, err, model.ErrUnknownParameter)
}

// TestParse_GridError keeps the grid sentinel in the chain.
func TestParse_GridError(t *testing.T) {
	_, err := model.Parse(strings.NewReader(`
parameters: [{name: p, low: 1, high: 0, count: 10}]
likelihood: {family: binomial, params: [9, p], observations: [6]}
`))
	assert.ErrorIs(t, err, model.ErrInvalidSpec)
	assert.True(t, errors.Is(err, grid.ErrInvalidGridSpec))
}

// TestParse_TooManyCells rejects huge axes and huge products without
// building them.
func TestParse_TooManyCells(t *testing.T) {
	const lik = "likelihood: {family: binomial, params: [9, p], observations: [6]}\n"
	docs := map[string]string{
		"Axis":    "parameters: [{name: p, low: 0, high: 1, count: 10000000000}]\n" + lik,
		"Product": "parameters: [{name: p, low: 0, high: 1, count: 10000}, {name: q, low: 0, high: 1, count: 10000}]\n" + lik,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := model.Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, model.ErrInvalidSpec)
			assert.ErrorIs(t, err, grid.ErrTooManyCells)
		})
	}
}

// TestLoad_Missing reports the path.
func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := model.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.yaml")
}

// TestParamRef_YAML checks constants and names decode and encode back.
func TestParamRef_YAML(t *testing.T) {
	var refs []model.ParamRef
	require.NoError(t, yaml.Unmarshal([]byte(`[9, 0.5, p, "sigma"]`), &refs))
	assert.Equal(t, []model.ParamRef{model.Const(9), model.Const(0.5), model.Ref("p"), model.Ref("sigma")}, refs)

	out, err := yaml.Marshal(refs)
	require.NoError(t, err)
	var back []model.ParamRef
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, refs, back)
}

// TestCompile_FlatPrior checks an omitted prior contributes nothing.
func TestCompile_FlatPrior(t *testing.T) {
	s, err := model.Parse(strings.NewReader(`
parameters: [{name: p, low: 0, high: 1, count: 11}]
likelihood: {family: binomial, params: [9, p], observations: [6]}
`))
	require.NoError(t, err)
	m, err := s.Compile()
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.LogPrior([]float64{0.3}))
	assert.Equal(t, []string{"p"}, m.Grid.Names())
	assert.True(t, m.LogLikelihood([]float64{0}) < -1e300, "p=0 cannot produce water")
}
